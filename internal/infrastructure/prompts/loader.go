package prompts

import (
	_ "embed"
)

//go:embed editorial.txt
var EditorialPrompt string

package formatter

// RenderAdvice boxes plain-text advice under a title.
func RenderAdvice(text string) string {
	return RenderBox("Production advice", text)
}

// RenderAdviceError renders the message shown when advice fails.
func RenderAdviceError(message string) string {
	return StyleRed.Render("✖ " + message)
}

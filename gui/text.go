package gui

// TruncateText shortens text to fit maxWidth, ending it with "..".
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix shortens text rune by rune until it plus suffix fits
// maxWidth. Text that already fits is returned unchanged.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	target := maxWidth - ctx.MeasureText(suffix).X
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
	}
	return suffix
}

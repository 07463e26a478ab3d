package ptag

// Comment renders an HTML/XML comment. The text is emitted verbatim; the
// caller must not include "--".
func Comment(text string) string {
	return "<!--" + text + "-->"
}

// Doctype renders a DOCTYPE declaration, "<!DOCTYPE html>" by default.
func Doctype(kind ...string) string {
	k := "html"
	if len(kind) > 0 {
		k = kind[0]
	}
	return "<!DOCTYPE " + k + ">"
}

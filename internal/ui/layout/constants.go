package layout

// Spacing constants for consistent padding and margins
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
)

// Standard UI element heights
const (
	HeaderHeight = 9 // logo plus subtitle
	InputHeight  = 3 // bordered single-line input
	ToastHeight  = 4
	FooterHeight = 3 // border, padding and shortcut line
	RowHeight    = 3 // name, url and meta lines
)

// MinListHeight is the smallest list viewport we render.
const MinListHeight = RowHeight

// CalculateListHeight returns the height left for the repository list after
// the header, input, toast and footer are laid out.
func CalculateListHeight(windowHeight int, toastVisible bool) int {
	h := windowHeight - HeaderHeight - InputHeight - FooterHeight - SpacingSM
	if toastVisible {
		h -= ToastHeight
	}
	if h < MinListHeight {
		return MinListHeight
	}
	return h
}

// ContentWidth returns the usable width inside a bordered, padded box.
func ContentWidth(windowWidth int) int {
	w := windowWidth - 4
	if w < 20 {
		return 20
	}
	return w
}

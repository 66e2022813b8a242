package ui

// Color accessor functions return the escape code for the named role in the
// active theme. They exist so call sites read as intent ("color this red")
// while the actual code varies per theme, and collapse to empty strings when
// colors are disabled.

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning/highlight color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the secondary accent color code.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold attribute code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline attribute code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the formatting reset code.
func ColorReset() string { return GetCurrentTheme().Reset }

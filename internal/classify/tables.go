package classify

import (
	"slices"

	"github.com/arcanaland/codexcards/internal/symbol"
)

// Calibration data measured on the 300 dpi renders of the printed sheets.
// Order is significant: the first reference within tolerance wins.

var cornerRefs = []Reference{
	{Name: "flask", Color: RGB{173, 160, 109}, Tolerance: 100, Symbol: symbol.Flask},
	{Name: "scroll", Color: RGB{182, 169, 113}, Tolerance: 100, Symbol: symbol.Scroll},
	{Name: "red", Color: RGB{192, 141, 111}, Tolerance: 1000, Symbol: symbol.Red},
	{Name: "green", Color: RGB{133, 162, 107}, Tolerance: 1000, Symbol: symbol.Green},
	{Name: "blue", Color: RGB{153, 167, 158}, Tolerance: 1000, Symbol: symbol.Blue},
	{Name: "purple", Color: RGB{144, 110, 130}, Tolerance: 1000, Symbol: symbol.Purple},
	{Name: "feather", Color: RGB{198, 189, 136}, Tolerance: 1000, Symbol: symbol.Feather},
	{Name: "blank", Color: RGB{221, 215, 160}, Tolerance: 1000, Symbol: symbol.Blank},
	// Missing corners show the card's background artwork
	{Name: "red background", Color: RGB{137, 25, 33}, Tolerance: 1000, Symbol: symbol.None},
	{Name: "green background", Color: RGB{49, 123, 64}, Tolerance: 2000, Symbol: symbol.None},
	{Name: "light blue background", Color: RGB{97, 177, 183}, Tolerance: 1000, Symbol: symbol.None},
	{Name: "dark blue background", Color: RGB{44, 65, 146}, Tolerance: 1000, Symbol: symbol.None},
	{Name: "blue background", Color: RGB{60, 110, 157}, Tolerance: 2000, Symbol: symbol.None},
	{Name: "purple background", Color: RGB{97, 36, 114}, Tolerance: 2000, Symbol: symbol.None},
}

var frontCenterRefs = []Reference{
	{Name: "red", Color: RGB{176, 34, 39}, Tolerance: 1000, Symbol: symbol.Red},
	{Name: "dark green", Color: RGB{36, 101, 52}, Tolerance: 1000, Symbol: symbol.Green},
	{Name: "green", Color: RGB{59, 142, 74}, Tolerance: 2000, Symbol: symbol.Green},
	{Name: "teal", Color: RGB{81, 183, 173}, Tolerance: 1000, Symbol: symbol.Blue},
	{Name: "blue", Color: RGB{58, 129, 156}, Tolerance: 2000, Symbol: symbol.Blue},
	{Name: "purple", Color: RGB{96, 34, 111}, Tolerance: 1000, Symbol: symbol.Purple},
}

// Backs are printed on a fabric texture, hence the washed-out tones
var backCenterRefs = []Reference{
	{Name: "red", Color: RGB{181, 102, 86}, Tolerance: 1000, Symbol: symbol.Red},
	{Name: "green", Color: RGB{83, 133, 77}, Tolerance: 1000, Symbol: symbol.Green},
	{Name: "blue", Color: RGB{110, 139, 157}, Tolerance: 1000, Symbol: symbol.Blue},
	{Name: "purple", Color: RGB{119, 73, 123}, Tolerance: 1000, Symbol: symbol.Purple},
}

// CornerTable returns the references used for all four corners of either face
func CornerTable() Table {
	return Table{Name: "corner", References: slices.Clone(cornerRefs)}
}

// FrontCenterTable returns the references used for the center of a front face
func FrontCenterTable() Table {
	return Table{Name: "front center", References: slices.Clone(frontCenterRefs)}
}

// BackCenterTable returns the references used for the center of a back face
func BackCenterTable() Table {
	return Table{Name: "back center", References: slices.Clone(backCenterRefs)}
}

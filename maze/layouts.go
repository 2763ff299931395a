package maze

// defaultRows is the 18×20 demo maze shown when no file is given.
var defaultRows = []string{
	"####################",
	"#S  #              #",
	"### #### #### ## # #",
	"##            ## # #",
	"## ## ##### #### # #",
	"## #  #   #        #",
	"## # ## # # ### ####",
	"## #  # # #     # ##",
	"##   ## #   ### #  #",
	"## #### ####  # ## #",
	"##          # #    #",
	"## #### ##### ### ##",
	"## #    #       #  #",
	"##### ### ### # # ##",
	"##    #   #   # # ##",
	"## #### ### ### # E#",
	"## #  # #       ## #",
	"## #### ### ### # ##",
}

// Default returns the built-in demo layout with start (1,1) and goal (15,18).
func Default() *Grid {
	g, err := Parse(defaultRows)
	if err != nil {
		panic("maze: invalid default layout: " + err.Error())
	}
	return g
}

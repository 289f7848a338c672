package display

import (
	"fmt"
	"io"

	"github.com/backmassage/submerge/internal/term"
)

const banner = `           _
 ___ _   _| |__  _ __ ___   ___ _ __ __ _  ___
/ __| | | | '_ \| '_ ` + "`" + ` _ \ / _ \ '__/ _` + "`" + ` |/ _ \
\__ \ |_| | |_) | | | | | |  __/ | | (_| |  __/
|___/\__,_|_.__/|_| |_| |_|\___|_|  \__, |\___|
                                    |___/
`

// PrintBanner prints the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta+banner+term.NC)
}

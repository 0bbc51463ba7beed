// termcanvas exercises the canvas, renderer, sixel encoder and dimension resolver from a shell.
package main

import "os"

func main() {
	os.Exit(execute())
}

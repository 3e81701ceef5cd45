// Command htmltree renders YAML document models to HTML and serves live
// previews of them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

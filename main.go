/*
Copyright © 2026 alidiusk
*/
package main

import "github.com/alidiusk/DiCast/cmd"

func main() {
	cmd.Execute()
}

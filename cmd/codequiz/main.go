// @title        Codequiz API
// @version      1.0
// @description  Generates coding-practice questions with a large language model.
// @BasePath     /
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

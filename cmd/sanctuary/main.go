// Command sanctuary runs the wildlife sanctuary demonstration: it builds the
// embedded cast, admits every animal and prints their behaviors to stdout.
package main

func main() {
	Execute()
}

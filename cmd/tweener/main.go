// Command tweener replays tween scripts and benchmarks the tween scheduler.
package main

func main() {
	Execute()
}

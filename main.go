package main

import "todo-lists.com/todo-lists/cmd"

func main() {
	cmd.Execute()
}

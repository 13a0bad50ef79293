package main

import "sobat/internal/app/server"

func main() {
	server.Run()
}

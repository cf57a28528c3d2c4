package main

import "insurai_backend/internal/app"

func main() {
	app.Run()
}

package main

import "elitejobs_backend/internal/app"

func main() {
	app.Run()
}

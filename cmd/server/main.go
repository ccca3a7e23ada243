package main

import "obiene/quotation_backend/internal/app"

func main() {
	app.Run()
}

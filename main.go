package main

import "github.com/manu2699/nutri-track/cmd/nutritrack"

func main() {
	nutritrack.Execute()
}

package ui

import (
	"fmt"
	"os"
)

type menuOption struct {
	title   string
	handler func()
}

// ShowMenu displays the main menu and handles user input
func ShowMenu() {
	menuOptions := []menuOption{
		{"Compute spectral indices from a raster image", ComputeIndices},
		{"List available indices by theme", func() { ListIndices(false) }},
		{"List available indices with formulas and references", func() { ListIndices(true) }},
		{"Show details for one index", ShowIndexDetail},
		{"Export the index catalog to CSV", ExportCatalog},
		{"Fetch Sentinel-2 bands for an area of interest", FetchSentinelBands},
		{"Exit the application", func() { fmt.Println("Exiting..."); os.Exit(0) }},
	}

	for {
		fmt.Printf("%s===================%s\n", ColorBlue, ColorReset)
		for i, opt := range menuOptions {
			fmt.Printf("%s%d. %s%s\n", ColorBlue, i+1, opt.title, ColorReset)
		}
		fmt.Printf("%sPlease enter your choice:%s\n", ColorBlue, ColorReset)

		var choice int
		_, err := fmt.Scan(&choice)
		if err != nil {
			fmt.Printf("\n%sInvalid input. Please enter a number.%s\n", ColorRed, ColorReset)
			fmt.Scanln() // Clear the buffer
			continue
		}

		if choice < 1 || choice > len(menuOptions) {
			fmt.Printf("%sInvalid choice. Please try again.%s\n", ColorRed, ColorReset)
			continue
		}

		menuOptions[choice-1].handler()
	}
}

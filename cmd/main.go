package main

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/forest-guardian/hyper-indices-cli/internal/ui"
	"github.com/joho/godotenv"
)

func printBanner() {
	figure1 := figure.NewFigure("Hyper", "isometric1", true)
	figure2 := figure.NewFigure("Indices", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func main() {
	godotenv.Load()
	godal.RegisterAll()

	printBanner()
	ui.ShowMenu()
}

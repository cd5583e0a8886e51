package main

import (
	"github.com/humanbelnik/kinoswap/prefform/internal/app"
	"github.com/humanbelnik/kinoswap/prefform/internal/config"
)

func main() {
	app.Go(config.Load())
}

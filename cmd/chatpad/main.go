package main

import "github.com/cleitonmarx/symbiont-ai-chatpad/internal/app"

func main() {
	err := app.NewChatPadApp().Run()
	if err != nil {
		panic(err)
	}
}

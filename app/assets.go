package app

import (
	"github.com/bvisness/joypad/joystick/layout"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const textureSize = 256

var ImgBase rl.Texture2D
var ImgKnob rl.Texture2D

// In a separate function because raylib must be initialized first.
func initImages() layout.Skin {
	ImgBase = genTexture(rl.Fade(rl.White, 0.05), rl.Fade(rl.White, 0.35), 0.9)
	ImgKnob = genTexture(rl.White, rl.Fade(rl.White, 0.6), 0.3)
	return layout.Skin{Base: &ImgBase, Knob: &ImgKnob}
}

func unloadImages() {
	rl.UnloadTexture(ImgBase)
	rl.UnloadTexture(ImgKnob)
}

// genTexture draws a radial gradient disc. Textures are drawn white and
// tinted per joystick, so actions can recolor them.
func genTexture(inner, outer rl.Color, density float32) rl.Texture2D {
	img := rl.GenImageGradientRadial(textureSize, textureSize, density, inner, rl.Blank)
	defer rl.UnloadImage(img)
	rl.ImageDrawCircleLines(img, textureSize/2, textureSize/2, textureSize/2-2, outer)
	return rl.LoadTextureFromImage(img)
}

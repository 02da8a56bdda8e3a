package app

import rl "github.com/gen2brain/raylib-go/raylib"

var Night = rl.Color{R: 12, G: 14, B: 17, A: 255}
var Charcoal = rl.Color{R: 20, G: 22, B: 25, A: 255}
var DarkGray = rl.Color{R: 33, G: 36, B: 40, A: 255}
var Gray = rl.Color{R: 67, G: 71, B: 79, A: 255}
var White = rl.Color{R: 250, G: 250, B: 252, A: 255}
var Accent = rl.Color{R: 102, G: 191, B: 255, A: 255}

const S1 = 4
const S2 = 8
const S3 = 16

const F1 = 12
const F2 = 16
const F3 = 20

// Grid spacing of the world floor.
const GridSize = 64

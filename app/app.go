package app

import (
	"fmt"
	"log"
	"sync"

	"github.com/bvisness/joypad/joystick"
	"github.com/bvisness/joypad/joystick/layout"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stick IDs the demo reacts to. Other joysticks in a layout still work and
// show up in the HUD, they just don't drive anything.
const (
	MoveStick = "move"
	AimStick  = "aim"
)

type demo struct {
	settings *Settings
	layout   *layout.Layout
	skin     layout.Skin

	set   *joystick.Set[string]
	built []layout.Built
	bus   *joystick.Bus[string]

	player  *Player
	camera  *CameraState
	screen  V2
	focused bool
}

func Main(configPath string) error {
	settings, err := LoadSettings(configPath)
	if err != nil {
		return err
	}
	l, err := LoadLayout(configPath)
	if err != nil {
		return err
	}
	player, err := NewPlayer(settings.Movement)
	if err != nil {
		return err
	}

	flags := uint32(rl.FlagMsaa4xHint)
	if settings.Window.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), settings.Window.Title)
	defer rl.CloseWindow()

	monitorWidth := rl.GetMonitorWidth(rl.GetCurrentMonitor())
	monitorHeight := rl.GetMonitorHeight(rl.GetCurrentMonitor())
	rl.SetWindowPosition(monitorWidth/2-settings.Window.Width/2, monitorHeight/2-settings.Window.Height/2)
	rl.SetTargetFPS(int32(settings.Window.FPS))

	skin := initImages()
	defer unloadImages()

	screen := V2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
	d := &demo{
		settings: settings,
		layout:   l,
		skin:     skin,
		bus:      joystick.NewBus[string](),
		player:   player,
		camera:   NewCameraState(screen),
		screen:   screen,
		focused:  true,
	}
	if err := d.build(); err != nil {
		return err
	}

	events, unsubscribe := d.bus.Subscribe(256)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logEvents(events)
	}()
	defer wg.Wait()
	defer unsubscribe()

	for !rl.WindowShouldClose() {
		d.frame()
	}
	return nil
}

// build (re)creates the joysticks for the current screen size. Active
// sessions are dropped.
func (d *demo) build() error {
	set, built, err := d.layout.NewSet(d.screen, d.skin)
	if err != nil {
		return fmt.Errorf("couldn't build layout: %w", err)
	}
	set.Bus = d.bus
	d.set, d.built = set, built
	return nil
}

func (d *demo) frame() {
	if rl.IsWindowResized() {
		d.screen = V2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
		d.camera.Resize(d.screen)
		if err := d.build(); err != nil {
			log.Printf("%v", err)
		}
	}

	// The release of a pointer is never seen once focus is gone.
	focused := rl.IsWindowFocused()
	if d.focused && !focused {
		d.set.ReleaseAll()
	}
	d.focused = focused

	dt := rl.GetFrameTime()
	for _, ev := range d.set.Update(joystick.RealInputProvider{}) {
		d.handle(ev, dt)
	}
	d.camera.Follow(d.player.Pos, dt)

	rl.BeginDrawing()
	rl.ClearBackground(Night)

	renderWorld(d.camera, d.player, d.screen)
	for _, b := range d.built {
		renderJoystick(b.Boxes)
	}
	renderHUD(d.set.All(), d.player)

	rl.EndDrawing()
}

func (d *demo) handle(ev joystick.Event[string], dt float32) {
	if ev.Type != joystick.Drag {
		return
	}
	switch ev.ID {
	case MoveStick:
		if err := d.player.Move(ev.Delta, dt); err != nil {
			log.Printf("%v", err)
		}
	case AimStick:
		d.player.Aim(ev.Delta, false)
	}
}

// logEvents logs edge events until the channel closes.
func logEvents(events <-chan joystick.Event[string]) {
	for ev := range events {
		if ev.Type != joystick.Drag {
			log.Printf("%v", ev)
		}
	}
}

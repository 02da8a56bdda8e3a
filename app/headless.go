package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bvisness/joypad/joystick/layout"
)

func HeadlessRun(tracePath, configPath string) {
	fmt.Printf("Starting joypad HEADLESS replay...\n")
	fmt.Printf("Loading trace: %s\n", tracePath)

	data, err := os.ReadFile(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}
	trace, err := ParseTrace(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}
	l, err := LoadLayout(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trace loaded. %d frames, %d joysticks.\n", len(trace.Frames), len(l.Joysticks))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, stopping replay...")
		cancel()
	}()

	count, err := Replay(ctx, trace, l, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Replay complete. %d events.\n", count)
}

// Replay feeds every trace frame through the layout's joysticks and writes
// one line per event. It returns the number of events written.
func Replay(ctx context.Context, trace *Trace, l *layout.Layout, out io.Writer) (int, error) {
	set, _, err := l.NewSet(trace.Screen, layout.Skin{})
	if err != nil {
		return 0, err
	}

	count := 0
	for i, frame := range trace.Frames {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		for _, ev := range set.Update(frame) {
			if _, err := fmt.Fprintf(out, "%5d  %v\n", i, ev); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridfire/audio"
	"gridfire/engine"
	"gridfire/input"
	"gridfire/level"
	"gridfire/raycast"
	"gridfire/render"
	"gridfire/system"
)

const frameInterval = 33 * time.Millisecond

var (
	levelFlag   = flag.String("level", "", "Path to an ASCII map file (default: generated arena)")
	enemiesFlag = flag.Int("enemies", 6, "Enemy count for the generated arena")
	seedFlag    = flag.Int64("seed", 0, "Arena seed (0 = random)")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	aggroFlag   = flag.Float64("aggro", 8, "Enemy aggro radius in grid units")
)

func main() {
	flag.Parse()

	grid, placements, err := loadLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: restore the terminal before the stack trace so it
	// stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nGRIDFIRE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	world := engine.NewWorld()
	if err := level.Populate(world, placements); err != nil {
		panic(err)
	}

	state := &input.State{}
	controller := input.NewController(1.0)

	sounds := audio.NewManager()
	var soundPlayer system.SoundPlayer
	if !*muteFlag {
		if err := sounds.Initialize(); err == nil {
			soundPlayer = sounds
			defer sounds.Cleanup()
		}
		// Initialization failure falls through to silent play
	}

	aiSystem := system.NewAISystem()
	aiSystem.AggroRadius = *aggroFlag
	shootingSystem := system.NewShootingSystem(state, grid)
	shootingSystem.Sounds = soundPlayer

	world.AddSystem(system.NewControlSystem(state))
	world.AddSystem(system.NewMovementSystem())
	world.AddSystem(aiSystem)
	world.AddSystem(shootingSystem)
	world.AddSystem(system.NewCullSystem())

	loop := engine.NewLoop(world, nil, frameInterval)
	caster := render.NewCaster(grid)

	width, height := screen.Size()
	buf := render.NewFrameBuffer(width, height-1)

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !controller.HandleEvent(ev) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				width, height = screen.Size()
				buf = render.NewFrameBuffer(width, height-1)
			}

		case <-frameTicker.C:
			*state = controller.Poll()
			loop.Step()
			caster.Render(world, buf)
			present(screen, buf, world, grid)
		}
	}
}

// loadLevel builds the grid and placements from the -level file or a
// generated arena.
func loadLevel() (*raycast.Grid, []level.Placement, error) {
	if *levelFlag == "" {
		arena := level.GenerateArena(level.ArenaConfig{
			Width:    31,
			Height:   21,
			Braiding: 0.3,
			Enemies:  *enemiesFlag,
			Seed:     *seedFlag,
		})
		return arena.Grid, arena.Placements, nil
	}

	data, err := os.ReadFile(*levelFlag)
	if err != nil {
		return nil, nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return level.Parse(lines)
}

// present draws the framebuffer as grayscale cells plus a status line.
func present(screen tcell.Screen, buf *render.FrameBuffer, world *engine.World, grid *raycast.Grid) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			v := int32(buf.At(x, y))
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(v, v, v))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	remaining := len(world.Query().
		With(world.Positions).
		With(world.Enemies).
		Execute())
	status := fmt.Sprintf(" enemies: %d | %dx%d map | [wasd] move [mouse] look [space] fire [q] quit",
		remaining, grid.Width(), grid.Height())
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < buf.Width; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		screen.SetContent(x, buf.Height, ch, nil, statusStyle)
	}

	screen.Show()
}

package renderer

import (
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/integrator"
	"github.com/pathband/go-path-tracer/pkg/pool"
)

// SkyAmbient is a soft sky color for open scenes; enclosed scenes keep the
// zero ambient and rely on their emitters
var SkyAmbient = core.NewVec3(0.55, 0.65, 0.85)

// Config controls a render
type Config struct {
	Width            int
	Height           int
	SamplesPerPixel  int
	MaxDepth         int
	NumWorkers       int       // Defaults to the CPU count
	RegionsPerWorker int       // Bands per worker; more bands smooth out uneven regions
	Ambient          core.Vec3 // Light value for rays that escape the scene
	Logger           core.Logger
}

// DefaultConfig returns a render configuration with sensible defaults for
// the given film size
func DefaultConfig(width, height int) Config {
	return Config{
		Width:            width,
		Height:           height,
		SamplesPerPixel:  50,
		MaxDepth:         8,
		NumWorkers:       runtime.NumCPU(),
		RegionsPerWorker: 2,
	}
}

// NewDefaultLogger returns a logger writing renderer status to stderr
func NewDefaultLogger() core.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}

// RegionJob carries one region's work to a worker. The seed gives each job
// an independent sample generator, so no random state crosses the worker
// boundary.
type RegionJob struct {
	Region          Region
	SamplesPerPixel int
	Seed            int64
}

// RegionResult is a finished region: its colors in row-major order
type RegionResult struct {
	Region Region
	Colors []core.Vec3
}

// RegionProgress reports partial completion of a region
type RegionProgress struct {
	RegionID  int
	Fraction  float64
	Remaining time.Duration
}

// RegionMessage is the union of the two message kinds a worker can send.
// Exactly one field is non-nil. Payloads are handed off, not shared: the
// worker builds each payload (including the Colors slice) fresh per message
// and keeps no reference after emitting, so no message state is ever
// touched on both sides of the worker boundary.
type RegionMessage struct {
	Result   *RegionResult
	Progress *RegionProgress
}

// Renderer renders a scene onto a film, sequentially or in parallel
type Renderer struct {
	world  integrator.Scene
	camera *Camera
	tracer *integrator.PathTracer
	config Config
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(world integrator.Scene, camera *Camera, config Config) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.RegionsPerWorker <= 0 {
		config.RegionsPerWorker = 2
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = 8
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}

	tracer := integrator.NewPathTracer()
	tracer.MaxDepth = config.MaxDepth
	tracer.Ambient = config.Ambient

	return &Renderer{
		world:  world,
		camera: camera,
		tracer: tracer,
		config: config,
	}
}

// RenderSequential renders every pixel on the calling goroutine
func (r *Renderer) RenderSequential() *Film {
	film := NewFilm(r.config.Width, r.config.Height)
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	region := Region{ID: 0, YStart: 0, YEnd: r.config.Height}
	colors := r.renderRegion(region, r.config.SamplesPerPixel, random, nil)
	film.SetRegion(region, colors)
	return film
}

// Render renders the film in parallel: the image is split into horizontal
// bands, one job per band, fanned out over a worker pool. Only this
// coordinator goroutine writes into the film; workers return their rows by
// value. Completion is driven by the pool's job accounting, so the result
// channel closing means every region has been applied.
func (r *Renderer) Render() *Film {
	film := NewFilm(r.config.Width, r.config.Height)
	regions := PartitionRegions(r.config.Height, r.config.NumWorkers*r.config.RegionsPerWorker)

	p := pool.New(r.config.NumWorkers, true, func(workerID int, job RegionJob, emit func(RegionMessage)) {
		random := rand.New(rand.NewSource(job.Seed))
		progress := func(msg RegionProgress) {
			emit(RegionMessage{Progress: &msg})
		}
		colors := r.renderRegion(job.Region, job.SamplesPerPixel, random, progress)
		emit(RegionMessage{Result: &RegionResult{Region: job.Region, Colors: colors}})
	})
	p.Start()

	now := time.Now().UnixNano()
	jobs := make([]RegionJob, len(regions))
	for i, region := range regions {
		jobs[i] = RegionJob{
			Region:          region,
			SamplesPerPixel: r.config.SamplesPerPixel,
			Seed:            now + int64(i),
		}
	}
	// Submit from a separate goroutine: with many regions per worker the
	// inbound queues fill up, and submission must not block the goroutine
	// that drains results
	go p.AddAll(jobs)

	logger := r.config.Logger
	for msg := range p.Results() {
		switch {
		case msg.Result != nil:
			film.SetRegion(msg.Result.Region, msg.Result.Colors)
			p.Done()
		case msg.Progress != nil:
			logger.Printf("region %d: %3.0f%% complete, ~%v remaining",
				msg.Progress.RegionID, msg.Progress.Fraction*100,
				msg.Progress.Remaining.Round(time.Second))
		}
	}
	return film
}

// renderRegion renders a region's pixels in row-major order and returns
// their colors. The progress callback, if non-nil, is invoked after each
// completed row.
func (r *Renderer) renderRegion(region Region, samplesPerPixel int, random *rand.Rand, progress func(RegionProgress)) []core.Vec3 {
	width := r.config.Width
	colors := make([]core.Vec3, 0, region.Rows()*width)
	start := time.Now()

	for j := region.YStart; j < region.YEnd; j++ {
		for i := 0; i < width; i++ {
			colors = append(colors, r.renderPixel(i, j, samplesPerPixel, random))
		}
		if progress != nil {
			fraction := float64(j-region.YStart+1) / float64(region.Rows())
			elapsed := time.Since(start)
			remaining := time.Duration(float64(elapsed)/fraction - float64(elapsed))
			progress(RegionProgress{RegionID: region.ID, Fraction: fraction, Remaining: remaining})
		}
	}
	return colors
}

// renderPixel averages samplesPerPixel jittered radiance estimates
func (r *Renderer) renderPixel(i, j, samplesPerPixel int, random *rand.Rand) core.Vec3 {
	var sum core.Vec3
	for s := 0; s < samplesPerPixel; s++ {
		ray := r.camera.GetRay(i, j, random)
		sum = sum.Add(r.tracer.RayColor(ray, r.world, random))
	}
	return sum.Multiply(1 / float64(samplesPerPixel))
}

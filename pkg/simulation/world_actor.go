package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	golog "github.com/tochemey/goakt/v3/log"
)

// WorldActorName is the name the world is spawned under.
const WorldActorName = "world"

// WorldActor owns a World and serialises every access to it through its
// mailbox: the game loop sends Tick and override messages, observers read
// snapshots either from the push channel or with GetSnapshot. A snapshot is
// pushed after every tick and every override, so a paused viewer still sees
// the agents it drags.
type WorldActor struct {
	world *World
	// snapshotCh receives the pushed snapshots; a full channel drops them.
	snapshotCh chan<- *pb.WorldSnapshot
	dropped    uint64
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor wraps world. snapshotCh may be nil when only GetSnapshot is used.
func NewWorldActor(world *World, snapshotCh chan<- *pb.WorldSnapshot) *WorldActor {
	return &WorldActor{
		world:      world,
		snapshotCh: snapshotCh,
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	if w.world == nil {
		return fmt.Errorf("world actor %s started without a world", ctx.ActorName())
	}
	ctx.ActorSystem().Logger().Infof("World %s is starting with %d agents", w.world.RunID(), w.world.Len())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		// Observers get the initial placement before the first tick.
		w.pushSnapshot()

	case *pb.Tick:
		w.world.Step()
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.world.Snapshot().ToProto())

	case *pb.GrabAgent:
		pos := geometry.Vector2D{X: msg.GetPosition().GetX(), Y: msg.GetPosition().GetY()}
		if err := w.world.Grab(int(msg.GetId()), pos, int(msg.GetRotation())); err != nil {
			ctx.Logger().Warnf("grab ignored: %v", err)
		}
		w.pushSnapshot()

	case *pb.GrabAt:
		cursor := geometry.Vector2D{X: msg.GetCursor().GetX(), Y: msg.GetCursor().GetY()}
		w.world.GrabAt(cursor, int(msg.GetRotation()))
		w.pushSnapshot()

	case *pb.ReleaseAgents:
		w.world.ReleaseAll()
		w.pushSnapshot()

	case *pb.SetStrengths:
		if err := w.world.SetStrengths(msg.GetAttraction(), msg.GetRepulsion(), msg.GetAlignment()); err != nil {
			ctx.Logger().Warnf("strengths ignored: %v", err)
		}

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is shutdown at tick %d (%d snapshots dropped)",
		w.world.RunID(), w.world.Tick(), w.dropped)
	return nil
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.world.Snapshot().ToProto():
	default:
		// observer busy, skip frame
		w.dropped++
	}
}

// StartActorSystem creates and starts an actor system. With verbose false
// the runtime's own logs are discarded.
func StartActorSystem(ctx context.Context, name string, verbose bool) (actor.ActorSystem, error) {
	logger := golog.DiscardLogger
	if verbose {
		logger = golog.DefaultLogger
	}
	system, err := actor.NewActorSystem(name,
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}

// SpawnWorld spawns a WorldActor for world under WorldActorName.
func SpawnWorld(ctx context.Context, system actor.ActorSystem, world *World, snapshotCh chan<- *pb.WorldSnapshot) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, WorldActorName, NewWorldActor(world, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return pid, nil
}

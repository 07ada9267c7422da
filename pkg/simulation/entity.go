package simulation

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// AgentSnapshot is the read-only view of one agent handed to observers.
// Color and any other styling is derived from it by the observer.
type AgentSnapshot struct {
	ID            int               `json:"id"`
	Position      geometry.Vector2D `json:"position"`
	Orientation   float64           `json:"orientation"`
	// Velocity is at most velocity_limit after integration, but the
	// collision kick runs afterwards: with collisions on, a snapshot may
	// show up to max(velocity_limit, boost_speed, base_speed).
	Velocity      float64           `json:"velocity"`
	Radius        float64           `json:"radius"`
	ManualControl bool              `json:"manual_control"`
}

// Center returns the center of the agent's circle.
func (a AgentSnapshot) Center() geometry.Vector2D {
	return a.Position.Add(geometry.Vector2D{X: a.Radius, Y: a.Radius})
}

// Snapshot is the state of every agent after a completed tick.
type Snapshot struct {
	Tick   uint64          `json:"tick"`
	RunID  string          `json:"run_id"`
	Agents []AgentSnapshot `json:"agents"`
}

func snapshotOf(a behavior.Agent) AgentSnapshot {
	return AgentSnapshot{
		ID:            a.ID,
		Position:      a.Position,
		Orientation:   a.Orientation,
		Velocity:      a.Velocity,
		Radius:        a.Radius,
		ManualControl: a.ManualOverride,
	}
}

// ToProto converts the snapshot into its wire envelope.
func (s Snapshot) ToProto() *pb.WorldSnapshot {
	out := &pb.WorldSnapshot{
		Tick:   s.Tick,
		RunId:  s.RunID,
		Agents: make([]*pb.AgentState, 0, len(s.Agents)),
	}
	for _, a := range s.Agents {
		out.Agents = append(out.Agents, a.ToProto())
	}
	return out
}

// ToProto converts one agent view into its wire form.
func (a AgentSnapshot) ToProto() *pb.AgentState {
	return &pb.AgentState{
		Id:            int32(a.ID),
		Position:      &pb.Vector2D{X: a.Position.X, Y: a.Position.Y},
		Orientation:   a.Orientation,
		Velocity:      a.Velocity,
		Radius:        a.Radius,
		ManualControl: a.ManualControl,
	}
}

// AgentFromProto converts a wire agent back; a missing position decodes as the origin.
func AgentFromProto(p *pb.AgentState) AgentSnapshot {
	return AgentSnapshot{
		ID:            int(p.GetId()),
		Position:      geometry.Vector2D{X: p.GetPosition().GetX(), Y: p.GetPosition().GetY()},
		Orientation:   p.GetOrientation(),
		Velocity:      p.GetVelocity(),
		Radius:        p.GetRadius(),
		ManualControl: p.GetManualControl(),
	}
}

// SnapshotFromProto converts a wire snapshot back into a Snapshot.
func SnapshotFromProto(p *pb.WorldSnapshot) Snapshot {
	s := Snapshot{
		Tick:   p.GetTick(),
		RunID:  p.GetRunId(),
		Agents: make([]AgentSnapshot, 0, len(p.GetAgents())),
	}
	for _, a := range p.GetAgents() {
		s.Agents = append(s.Agents, AgentFromProto(a))
	}
	return s
}

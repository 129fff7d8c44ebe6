package ecs

// System is a unit of per-frame behavior. Systems are plain structs; Query
// and Singleton fields are initialized by the Scheduler at registration and
// any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame carries everything a system may touch during one tick.
// Structural changes go through Commands and apply after all systems ran.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}

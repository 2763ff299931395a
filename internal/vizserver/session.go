package vizserver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/maze"
)

// session owns one grid snapshot and the step-by-step search over it.
type session struct {
	id    uuid.UUID
	grid  *maze.Grid
	start maze.Coord
	goal  maze.Coord

	mu      sync.Mutex
	stepper *astar.Stepper[maze.Coord]
}

func newSession(g *maze.Grid, start, goal maze.Coord, opts ...astar.Option) (*session, error) {
	stepper, err := maze.NewStepper(context.Background(), g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return &session{
		id:      uuid.New(),
		grid:    g,
		start:   start,
		goal:    goal,
		stepper: stepper,
	}, nil
}

func (s *session) step() (astar.StepSnapshot[maze.Coord], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepper.Step()
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepper.Close()
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*session)}
}

func (st *sessionStore) put(s *session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *sessionStore) get(id uuid.UUID) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) remove(id uuid.UUID) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.close()
	}
	return ok
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

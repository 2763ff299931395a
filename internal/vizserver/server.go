// Package vizserver exposes maze sessions over HTTP so a browser can replay
// the A* search one expansion at a time.
package vizserver

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/maze"
	"github.com/pdrpinto/astar-maze/render"
)

const (
	defaultRows = 18
	defaultCols = 20
	maxSide     = 200
)

// Config holds configuration settings for creating a new Server instance.
type Config struct {
	BaseURL     string  // Base URL for API routes
	CellSize    int     // Pixel size used by the image endpoint
	WallDensity float64 // Density used when a request does not set one
	Logger      *logrus.Entry
}

// Server manages maze sessions and their HTTP routes.
type Server struct {
	cfg    Config
	log    *logrus.Entry
	store  *sessionStore
	engine *gin.Engine
}

// New creates a Server and registers its routes.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/api"
	}
	s := &Server{cfg: cfg, log: cfg.Logger, store: newSessionStore()}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	v1 := engine.Group(cfg.BaseURL).Group("/v1")
	{
		v1.GET("/health", s.health)
		v1.POST("/sessions", s.createSession)
		v1.POST("/sessions/:id/step", s.step)
		v1.GET("/sessions/:id/solution", s.solution)
		v1.GET("/sessions/:id/image.png", s.image)
		v1.DELETE("/sessions/:id", s.deleteSession)
	}
	s.engine = engine
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	s.log.WithField("addr", addr).Info("step visualizer listening")
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"elapsed": time.Since(began),
		}).Debug("request")
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "sessions": s.store.len()})
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}

	g, err := s.buildGrid(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	start, err := g.Start()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	goal, err := g.Goal()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	sess, err := newSession(g, start, goal, astar.WithLogger(s.log))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.store.put(sess)
	s.log.WithFields(logrus.Fields{"session": sess.id, "rows": g.Rows(), "cols": g.Cols()}).Info("session created")

	c.JSON(http.StatusCreated, createSessionResponse{
		ID:    sess.id.String(),
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: start,
		Goal:  goal,
		Maze:  g.String(),
	})
}

func (s *Server) buildGrid(req createSessionRequest) (*maze.Grid, error) {
	switch req.Layout {
	case "", "default":
		return maze.Default(), nil
	case "random":
	default:
		return nil, fmt.Errorf("unknown layout %q", req.Layout)
	}

	rows, cols := req.Rows, req.Cols
	if rows == 0 {
		rows = defaultRows
	}
	if cols == 0 {
		cols = defaultCols
	}
	if rows < 2 || cols < 2 || rows > maxSide || cols > maxSide {
		return nil, fmt.Errorf("grid size %dx%d outside 2..%d", rows, cols, maxSide)
	}
	density := req.Density
	if density == 0 {
		density = s.cfg.WallDensity
	}
	start := maze.Coord{Row: 1, Col: 1}
	if req.Start != nil {
		start = *req.Start
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	return maze.Generate(rand.New(rand.NewSource(seed)), rows, cols, start, maze.GenerateOptions{
		WallDensity:      density,
		RequireReachable: req.RequireReachable,
	})
}

// lookup resolves the :id parameter or writes the error response.
func (s *Server) lookup(c *gin.Context) (*session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid session id"})
		return nil, false
	}
	sess, ok := s.store.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		return nil, false
	}
	return sess, true
}

func (s *Server) step(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	snap, err := sess.step()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, astar.ErrExpansionLimit) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshotResponse{
		Step:    snap.StepIndex,
		Current: snap.Current,
		FCost:   snap.FCost,
		Open:    sortedKeys(snap.Open),
		Closed:  sortedKeys(snap.Closed),
		Done:    snap.Done,
		Found:   snap.Found,
		Path:    snap.Path,
	})
}

func (s *Server) solution(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sol, err := maze.Solve(sess.grid, sess.start, sess.goal, astar.WithLogger(s.log))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.log.WithFields(logrus.Fields{
		"session":  sess.id,
		"found":    sol.Found,
		"length":   len(sol.Path),
		"expanded": sol.Expanded,
	}).Info("solved")
	c.JSON(http.StatusOK, solutionResponse{Solution: sol, Maze: sess.grid.Overlay(sol.Path)})
}

func (s *Server) image(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sol, err := maze.Solve(sess.grid, sess.start, sess.goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	robot := sess.start
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := render.WritePNG(c.Writer, sess.grid, sol.Path, &robot, render.Options{CellSize: s.cfg.CellSize}); err != nil {
		s.log.WithError(err).Error("encoding png")
	}
}

func (s *Server) deleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid session id"})
		return
	}
	if !s.store.remove(id) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

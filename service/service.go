/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package service exposes the planarity engine over HTTP: submit a
// graph, ask whether it embeds, ask for a four-colouring. Every embed or
// colour request builds its own planar.Graph, never shared across
// goroutines (§5); a submitted graphlib.Graph is kept in the registry
// and read by later requests until it is deleted.
package service

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	graphlib "github.com/flxj/planarity"
	"github.com/flxj/planarity/planar"
)

var errGraphNotExists = fmt.Errorf("graph not exists")

// Service is the planarity HTTP front end: a gin router over an
// in-memory registry of submitted graphs, keyed by a generated id.
type Service struct {
	host string
	port int

	mu     sync.RWMutex
	graphs map[string]graphlib.Graph[int, any, int]
	svc    *gin.Engine
}

func NewService(host string, port int) *Service {
	return &Service{
		host:   host,
		port:   port,
		graphs: make(map[string]graphlib.Graph[int, any, int]),
	}
}

func (s *Service) Run() error {
	s.svc = gin.Default()
	s.router()
	return s.svc.Run(fmt.Sprintf("%s:%d", s.host, s.port))
}

func (s *Service) router() {
	g := s.svc.Group("/graphs")

	// POST /graphs: submit an adjacency-list body, returns the graph id.
	g.POST("", func(c *gin.Context) {
		gr, err := graphlib.ReadAdjacencyList(c.Request.Body)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		id := uuid.NewString()
		s.mu.Lock()
		s.graphs[id] = gr
		s.mu.Unlock()
		c.JSON(200, gin.H{"id": id})
	})

	// GET /graphs/:id/embed?mode=planar|outerplanar
	g.GET("/:id/embed", func(c *gin.Context) {
		gr, err := s.get(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		flags := planar.Planar
		if c.Query("mode") == "outerplanar" {
			flags = planar.Outerplanar
		}
		emb, err := graphlib.Embed(gr, flags)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		vs, err := gr.AllVertexes()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		keys := make([]int, len(vs))
		for i, v := range vs {
			keys[i] = v.Key
		}
		body, err := graphlib.MarshalEmbeddingToJSON(emb, keys)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json", body)
	})

	// GET /graphs/:id/colour
	g.GET("/:id/colour", func(c *gin.Context) {
		gr, err := s.get(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		colours, err := graphlib.FourColor(gr)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"colours": colours})
	})

	// DELETE /graphs/:id
	g.DELETE("/:id", func(c *gin.Context) {
		s.mu.Lock()
		delete(s.graphs, c.Param("id"))
		s.mu.Unlock()
		c.JSON(200, gin.H{})
	})
}

func (s *Service) get(id string) (graphlib.Graph[int, any, int], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gr, ok := s.graphs[id]
	if !ok {
		return nil, errGraphNotExists
	}
	return gr, nil
}

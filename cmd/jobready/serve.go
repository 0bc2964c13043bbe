package main

import (
	jrhttp "github.com/Muzammil-Ahm3d/jobready/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or the server stops accepting connections.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []jrhttp.Option{
		jrhttp.WithAddr(c.Addr),
		jrhttp.WithAdminToken(c.AdminToken),
		jrhttp.WithLogger(deps.Logger),
		jrhttp.WithChatRate(c.ChatRate, c.ChatBurst),
	}
	if c.Listener != nil {
		opts = append(opts, jrhttp.WithListener(c.Listener))
	}
	s := jrhttp.NewServer(opts...)
	s.Resolver = deps.Resolver
	s.Categories = deps.Categories
	s.Questions = deps.Questions
	s.Reformatter = deps.Reformatter

	if err := s.Listen(); err != nil {
		return err
	}
	deps.Logger.Info("server listening", "addr", s.Addr(), "admin", c.AdminToken != "")

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		return s.Close()
	})
	return g.Wait()
}

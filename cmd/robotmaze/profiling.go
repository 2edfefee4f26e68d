package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"
)

// cpuProfile records a CPU profile for the lifetime of one simulation run.
type cpuProfile struct {
	f       *os.File
	log     *zap.Logger
	started time.Time
}

// startCPUProfile creates path and starts profiling into it.
func startCPUProfile(path string, log *zap.Logger) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("starting profile: %w", err)
	}
	log.Info("recording CPU profile", zap.String("path", path))
	return &cpuProfile{f: f, log: log, started: time.Now()}, nil
}

// Stop flushes the profile and closes the file. Later calls do nothing.
func (p *cpuProfile) Stop() {
	if p.f == nil {
		return
	}
	pprof.StopCPUProfile()
	fields := []zap.Field{zap.String("path", p.f.Name()), zap.Duration("elapsed", time.Since(p.started))}
	if info, err := p.f.Stat(); err == nil {
		fields = append(fields, zap.Int64("bytes", info.Size()))
	}
	if err := p.f.Close(); err != nil {
		p.log.Warn("closing CPU profile", zap.Error(err))
	} else {
		p.log.Info("CPU profile written", fields...)
	}
	p.f = nil
}

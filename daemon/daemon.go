// Package daemon runs the monitoring core headless: both sampling loops,
// anomaly alerts over webhooks and config hot reload.
package daemon

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/alert"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/config"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/monitor"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/proc"
)

const alertCooldown = 60 * time.Second

type Daemon struct {
	engine *monitor.Engine
	logger *log.Logger

	mu         sync.Mutex
	cfg        *config.Config
	lastAlerts map[int32]time.Time
}

func New(logger *log.Logger) *Daemon {
	cfg, _ := config.LoadConfig()

	engine := monitor.NewEngine(proc.NewCollector(), logger)
	engine.SetOptions(EngineOptions(cfg))

	return &Daemon{
		engine:     engine,
		logger:     logger,
		cfg:        cfg,
		lastAlerts: make(map[int32]time.Time),
	}
}

// EngineOptions translates the config file into engine options.
func EngineOptions(cfg *config.Config) monitor.Options {
	return monitor.Options{
		Interval: time.Duration(cfg.UpdateInterval * float64(time.Second)),
		Thresholds: monitor.Thresholds{
			CPU:    cfg.CPUThreshold,
			Memory: cfg.MemThreshold,
		},
		Filter: monitor.FilterOptions{
			CPUMin:    cfg.CPUFilter,
			MemoryMin: cfg.MemFilter,
			Name:      cfg.NameFilter,
		},
		HistoryTTL: time.Duration(cfg.HistoryTTLMinutes) * time.Minute,
	}
}

func (d *Daemon) Run(ctx context.Context) error {
	go d.watchConfig(ctx)

	d.engine.SetNotify(d.onUpdate)
	return d.engine.Run(ctx)
}

func (d *Daemon) onUpdate(u monitor.Update) {
	if u.Paused {
		return
	}
	for _, p := range u.Snapshot.Processes {
		d.checkAlerts(p)
	}
}

func (d *Daemon) checkAlerts(p model.ProcessSample) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if t, ok := d.lastAlerts[p.Pid]; ok {
		if now.Sub(t) < alertCooldown {
			return
		}
	}

	webhook := d.cfg.Webhooks[d.cfg.ActiveWebhook]

	if p.CPUPercent > d.cfg.CPUThreshold {
		alert.SendDiscord(webhook,
			fmt.Sprintf("High CPU usage detected: %s (PID: %d) at %.1f%%", p.Name, p.Pid, p.CPUPercent))
		d.lastAlerts[p.Pid] = now
	}

	if p.MemoryPercent > d.cfg.MemThreshold {
		alert.SendDiscord(webhook,
			fmt.Sprintf("High memory usage detected: %s (PID: %d) at %.1f%%", p.Name, p.Pid, p.MemoryPercent))
		d.lastAlerts[p.Pid] = now
	}
}

func (d *Daemon) watchConfig(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		d.logger.Printf("config watch unavailable: %v", err)
		return
	}
	defer w.Close()
	w.Add(config.ConfigPath())

	for {
		select {
		case <-ctx.Done():
			return

		case e := <-w.Events:
			if e.Op&fsnotify.Write == fsnotify.Write {
				cfg, err := config.LoadConfig()
				if err != nil {
					continue
				}
				d.mu.Lock()
				d.cfg = cfg
				d.mu.Unlock()
				d.engine.SetOptions(EngineOptions(cfg))
				d.logger.Println("config reloaded")
			}
		}
	}
}

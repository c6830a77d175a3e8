package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/omeyang/xcommons/pkg/observability/xlog"
)

// DefaultDebounce 默认防抖时间。
const DefaultDebounce = 100 * time.Millisecond

// WatchCallback 文件变更回调函数。
// err 非 nil 时 cfg 仍持有上一次成功加载的配置。
type WatchCallback func(cfg Config, err error)

// Watcher 配置文件监视器，监控配置文件变更并自动重载。
type Watcher struct {
	cfg      *koanfConfig
	fsw      *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	logger   xlog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
	logger   xlog.Logger
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{
		debounce: DefaultDebounce,
		logger:   xlog.Discard(),
	}
}

// WithDebounce 设置防抖时间，在该时间内的多次变更只触发一次重载。
// 非正值被忽略。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithLogger 设置日志器，记录重载结果与监视错误。nil 被忽略。
func WithLogger(logger xlog.Logger) WatchOption {
	return func(o *watchOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Watch 创建配置文件监视器。
//
// cfg 必须由 [New] 创建，否则返回 [ErrNotFromFile]。
// 返回的 Watcher 需要调用 Start 或 StartAsync 开始监视，Stop 停止。
//
//	cfg, _ := xconf.New("/etc/app/config.yaml")
//	w, err := xconf.Watch(cfg, func(c xconf.Config, err error) {
//	    if err != nil {
//	        return
//	    }
//	    _ = c.Unmarshal("log", &logCfg)
//	})
//	if err != nil {
//	    return err
//	}
//	w.StartAsync()
//	defer w.Stop()
func Watch(cfg Config, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	kc, ok := cfg.(*koanfConfig)
	if !ok || kc.path == "" {
		return nil, ErrNotFromFile
	}

	options := defaultWatchOptions()
	for _, opt := range opts {
		opt(options)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: failed to create watcher: %w", err)
	}

	// 监视目录而非文件本身：编辑器保存时可能先删除再创建，直接监视文件会丢失事件
	dir := filepath.Dir(kc.path)
	if err := fsw.Add(dir); err != nil {
		closeErr := fsw.Close()
		return nil, errors.Join(
			fmt.Errorf("xconf: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		cfg:      kc,
		fsw:      fsw,
		callback: callback,
		debounce: options.debounce,
		logger:   options.logger.With(xlog.Component("xconf"), xlog.Path(kc.path)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// WatchSettings 监视配置文件并在变更后重新解析为 [Settings]。
// 重载或校验失败时 callback 收到 nil 和错误，旧配置保持不变。
func WatchSettings(path string, callback func(*Settings, error), opts ...WatchOption) (*Watcher, error) {
	cfg, err := New(path, WithDefaults(settingsDefaults))
	if err != nil {
		return nil, err
	}
	return Watch(cfg, func(c Config, err error) {
		if callback == nil {
			return
		}
		if err != nil {
			callback(nil, err)
			return
		}
		callback(decodeSettings(c))
	}, opts...)
}

// Start 启动监视并阻塞，直到 Stop 被调用。
func (w *Watcher) Start() {
	if !w.markStarted() {
		return
	}
	w.run()
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
func (w *Watcher) StartAsync() {
	if !w.markStarted() {
		return
	}
	go w.run()
}

func (w *Watcher) markStarted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return false
	}
	w.started = true
	return true
}

// Stop 停止监视，可重复调用。
//
// Stop 等待监视循环退出：返回时正在执行的回调已经结束，之后也不会再有回调。
// 回调运行在监视循环中，在回调内同步调用 Stop 会死锁，应使用 go w.Stop()。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	w.cancel()
	err := w.fsw.Close()
	if started {
		<-w.done
	}
	return err
}

// run 监视循环。防抖定时器由循环自身持有，回调在本 goroutine 中执行。
func (w *Watcher) run() {
	defer close(w.done)

	filename := filepath.Base(w.cfg.path)
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event, filename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn(w.ctx, "config watch error", xlog.Err(err))
			w.notify(fmt.Errorf("xconf: watch error: %w", err))
		}
	}
}

// relevant 报告事件是否可能表示目标文件的内容更新。
//   - Write: 直接修改
//   - Create: 新建文件（部分编辑器）
//   - Rename: 原子写入（写临时文件后 rename）
func relevant(event fsnotify.Event, filename string) bool {
	if filepath.Base(event.Name) != filename {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}
	start := time.Now()
	err := w.cfg.Reload()
	if err != nil {
		w.logger.Warn(w.ctx, "config reload failed", xlog.Err(err))
	} else {
		w.logger.Info(w.ctx, "config reloaded", xlog.Duration(time.Since(start)))
	}
	w.notify(err)
}

func (w *Watcher) notify(err error) {
	if w.callback == nil {
		return
	}
	w.callback(w.cfg, err)
}

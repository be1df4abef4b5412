package systems

import (
	"math/rand"
	"sort"

	"github.com/gonewx/chestfx/internal/particle"
)

// fakeDrawable 记录粒子推送给渲染层的所有状态
type fakeDrawable struct {
	attached  bool
	attaches  int
	detaches  int
	frames    []particle.TextureID
	animated  bool
	x, y      float64
	rotation  float64
	scale     float64
	transform int
}

func (d *fakeDrawable) Attach() {
	d.attached = true
	d.attaches++
}

func (d *fakeDrawable) Detach() {
	d.attached = false
	d.detaches++
}

func (d *fakeDrawable) SetTexture(frames []particle.TextureID, animated bool) {
	d.frames = frames
	d.animated = animated
}

func (d *fakeDrawable) SetTransform(x, y, rotation, scale float64) {
	d.x, d.y, d.rotation, d.scale = x, y, rotation, scale
	d.transform++
}

// fakeDrawables 是一个记录所有已分配 fakeDrawable 的工厂
type fakeDrawables struct {
	all []*fakeDrawable
}

func (f *fakeDrawables) factory() Drawable {
	d := &fakeDrawable{}
	f.all = append(f.all, d)
	return d
}

// manualScheduler 是测试用的 Scheduler：时间只在 Advance 时前进
type manualScheduler struct {
	now   float64
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at        float64
	seq       int
	fn        func()
	cancelled bool
}

func (s *manualScheduler) After(delayMs float64, fn func()) func() {
	s.seq++
	task := &manualTask{at: s.now + delayMs, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// pending 返回尚未执行且未取消的任务数
func (s *manualScheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance 推进时间并按到期时间顺序执行任务（回调中新增的任务同样参与本次推进）
func (s *manualScheduler) Advance(dt float64) {
	target := s.now + dt
	for {
		sort.SliceStable(s.tasks, func(i, j int) bool {
			if s.tasks[i].at != s.tasks[j].at {
				return s.tasks[i].at < s.tasks[j].at
			}
			return s.tasks[i].seq < s.tasks[j].seq
		})
		if len(s.tasks) == 0 || s.tasks[0].at > target {
			break
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		if task.cancelled {
			continue
		}
		s.now = task.at
		task.fn()
	}
	s.now = target
}

// seededRand 返回固定种子的随机源
func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testConfig 返回一个便于断言的确定性配置：无随机抖动、无扩散
func testConfig() particle.EmitterConfig {
	cfg := particle.DefaultEmitterConfig()
	cfg.Amount = 5
	cfg.Life = 1000
	cfg.Behavior.Velocity.Spread = 0
	cfg.Behavior.Velocity.Speed = 0
	return cfg
}

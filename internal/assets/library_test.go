package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/jadedm/feed-the-cow/internal/scene"
)

func TestLoadImages(t *testing.T) {
	l := NewLibrary(Options{})

	for _, key := range []string{"bg", "cow", "grass", "injection", "deadCow", "button", "titlescreen", "preloadBar", "titleimage", "gamepad"} {
		l.Load(key, scene.AssetImage)
		if !l.Decoded(key) {
			t.Errorf("image %q not ready after Load", key)
		}
		if _, ok := l.Sprite(key); !ok {
			t.Errorf("Sprite(%q) missing", key)
		}
	}

	l.Load("moon", scene.AssetImage)
	if !errors.Is(l.Err("moon"), ErrUnknownAsset) {
		t.Errorf("Err(moon) = %v, expected ErrUnknownAsset", l.Err("moon"))
	}
	if l.Decoded("moon") {
		t.Error("unknown image reported decoded")
	}
}

func TestLoadBuiltinAudio(t *testing.T) {
	l := NewLibrary(Options{})
	for _, key := range []string{"music", "hurt", "select"} {
		l.Load(key, scene.AssetAudio)
	}
	l.Wait()

	for _, key := range []string{"music", "hurt", "select"} {
		if !l.Decoded(key) || l.Err(key) != nil {
			t.Errorf("%q: decoded %v err %v", key, l.Decoded(key), l.Err(key))
		}
		buf, ok := l.Clip(key)
		if !ok || buf.Len() == 0 {
			t.Errorf("Clip(%q) empty", key)
		}
	}

	music, _ := l.Clip("music")
	want := Format.SampleRate.N(3200 * time.Millisecond)
	if d := music.Len() - want; d < -100 || d > 100 {
		t.Errorf("music is %d samples, expected about %d", music.Len(), want)
	}
}

func TestLoadUnknownAudio(t *testing.T) {
	l := NewLibrary(Options{})
	l.Load("moo", scene.AssetAudio)
	l.Wait()

	if !errors.Is(l.Err("moo"), ErrUnknownAsset) {
		t.Errorf("Err(moo) = %v, expected ErrUnknownAsset", l.Err("moo"))
	}
	if _, ok := l.Clip("moo"); ok {
		t.Error("Clip of a failed key should not be available")
	}
	if done, total := l.Progress(); done != 1 || total != 1 {
		t.Errorf("Progress() = %d/%d, a failed load still counts as done", done, total)
	}
}

func TestMissingFileFailsAndRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.wav")
	l := NewLibrary(Options{Files: map[string]string{"music": path}})

	l.Load("music", scene.AssetAudio)
	l.Wait()
	if !errors.Is(l.Err("music"), fs.ErrNotExist) {
		t.Fatalf("Err(music) = %v, expected a missing file", l.Err("music"))
	}

	writeWAV(t, path, Format, 1000)

	l.Load("music", scene.AssetAudio)
	l.Wait()
	if !l.Decoded("music") {
		t.Fatalf("retry failed: %v", l.Err("music"))
	}
	if buf, _ := l.Clip("music"); buf.Len() != 1000 {
		t.Errorf("clip is %d samples, expected 1000", buf.Len())
	}
}

func TestWAVIsResampled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurt.wav")
	half := beep.Format{SampleRate: Format.SampleRate / 2, NumChannels: 2, Precision: 2}
	writeWAV(t, path, half, 1000)

	l := NewLibrary(Options{Files: map[string]string{"hurt": path}})
	l.Load("hurt", scene.AssetAudio)
	l.Wait()

	buf, ok := l.Clip("hurt")
	if !ok {
		t.Fatalf("Clip(hurt) failed: %v", l.Err("hurt"))
	}
	if d := buf.Len() - 2000; d < -20 || d > 20 {
		t.Errorf("resampled clip is %d samples, expected about 2000", buf.Len())
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	l := NewLibrary(Options{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Load("select", scene.AssetAudio)
			l.Progress()
			l.Decoded("select")
		}()
	}
	wg.Wait()
	l.Wait()

	if done, total := l.Progress(); done != 1 || total != 1 {
		t.Errorf("Progress() = %d/%d, expected 1/1", done, total)
	}
}

func writeWAV(t *testing.T, path string, format beep.Format, samples int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tone := newOscillator(waveSine, 440, format.SampleRate.D(2*samples), format.SampleRate)
	if err := wav.Encode(f, beep.Take(samples, tone), format); err != nil {
		t.Fatal(err)
	}
}

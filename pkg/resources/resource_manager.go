// Package resources loads and caches the Ebitengine-side assets: sprites,
// background music and fonts. Every loader returns an error and the scene
// decides how to degrade; a missing sprite is drawn as a procedural shape and
// missing audio means silence.
package resources

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ResourceManager caches assets by their name relative to the assets
// directory, so each file is read and decoded at most once.
//
// Failed loads are cached too. A profile that names a sprite the player never
// installed would otherwise hit the disk every frame.
//
// Thread Safety Note:
// The caches are plain maps. Load everything from the game goroutine.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000), "assets")
//	img := rm.ImageOrNil("player.png") // nil → draw a triangle instead
type ResourceManager struct {
	assetsDir    string
	audioContext *audio.Context // nil disables audio entirely

	imageCache map[string]*ebiten.Image
	audioCache map[string]*audio.Player
	fontCache  map[string]*text.GoTextFace
	failed     map[string]error

	fallbackFace text.Face
}

// NewResourceManager creates a ResourceManager rooted at assetsDir.
// audioContext may be nil; audio loaders then fail with an error.
func NewResourceManager(audioContext *audio.Context, assetsDir string) *ResourceManager {
	return &ResourceManager{
		assetsDir:    assetsDir,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		fontCache:    make(map[string]*text.GoTextFace),
		failed:       make(map[string]error),
	}
}

// AssetsDir returns the directory assets are resolved against.
func (rm *ResourceManager) AssetsDir() string {
	return rm.assetsDir
}

// resolve turns an asset name into a file path. Absolute paths are kept.
func (rm *ResourceManager) resolve(name string) string {
	if filepath.IsAbs(name) || rm.assetsDir == "" {
		return name
	}
	return filepath.Join(rm.assetsDir, name)
}

// LoadImage loads an image and caches it.
//
// Returns an error if the file does not exist or cannot be decoded.
// Does not panic.
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[name]; ok {
		return img, nil
	}
	key := "image:" + name
	if err, ok := rm.failed[key]; ok {
		return nil, err
	}

	path := rm.resolve(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, rm.fail(key, fmt.Errorf("failed to open image file %s: %w", path, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, rm.fail(key, fmt.Errorf("failed to decode image %s: %w", path, err))
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg
	return ebitenImg, nil
}

// ImageOrNil loads an image and logs a warning on failure.
// An empty name returns nil without a warning.
func (rm *ResourceManager) ImageOrNil(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	_, seen := rm.failed["image:"+name]
	img, err := rm.LoadImage(name)
	if err != nil {
		if !seen {
			log.Printf("[ResourceManager] Warning: %v (using procedural shape)", err)
		}
		return nil
	}
	return img
}

// GetImage returns a cached image, or nil if it was never loaded.
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// LoadAudio loads a looping music track (.mp3 or .ogg).
// The returned player is cached and not started.
func (rm *ResourceManager) LoadAudio(name string) (*audio.Player, error) {
	return rm.loadPlayer(name, true)
}

// LoadSoundEffect loads a one-shot sound (.mp3 or .ogg).
func (rm *ResourceManager) LoadSoundEffect(name string) (*audio.Player, error) {
	return rm.loadPlayer(name, false)
}

func (rm *ResourceManager) loadPlayer(name string, loop bool) (*audio.Player, error) {
	key := fmt.Sprintf("audio:%s:%t", name, loop)
	if p, ok := rm.audioCache[key]; ok {
		return p, nil
	}
	if err, ok := rm.failed[key]; ok {
		return nil, err
	}
	if rm.audioContext == nil {
		return nil, rm.fail(key, fmt.Errorf("no audio context for %s", name))
	}

	path := rm.resolve(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, rm.fail(key, fmt.Errorf("failed to open audio file %s: %w", path, err))
	}
	defer file.Close()

	// 整个文件读入内存，播放器 seek 时不需要保持文件句柄
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, rm.fail(key, fmt.Errorf("failed to read audio file %s: %w", path, err))
	}

	stream, err := decodeAudio(path, bytes.NewReader(data))
	if err != nil {
		return nil, rm.fail(key, err)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, rm.fail(key, fmt.Errorf("failed to create audio player for %s: %w", path, err))
	}

	rm.audioCache[key] = player
	return player, nil
}

type lengthReadSeeker interface {
	io.ReadSeeker
	Length() int64
}

func decodeAudio(path string, r io.ReadSeeker) (lengthReadSeeker, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// LoadFont loads a TrueType/OpenType face at the given size.
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	key := fmt.Sprintf("%s:%.1f", name, size)
	if face, ok := rm.fontCache[key]; ok {
		return face, nil
	}

	path := rm.resolve(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[key] = face
	return face, nil
}

// FaceOrDefault returns the named font, or the built-in 7x13 bitmap face
// when name is empty or fails to load.
func (rm *ResourceManager) FaceOrDefault(name string, size float64) text.Face {
	if name != "" {
		face, err := rm.LoadFont(name, size)
		if err == nil {
			return face
		}
		log.Printf("[ResourceManager] Warning: %v (using built-in font)", err)
	}
	return rm.DefaultFace()
}

// DefaultFace returns the built-in bitmap face.
func (rm *ResourceManager) DefaultFace() text.Face {
	if rm.fallbackFace == nil {
		rm.fallbackFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return rm.fallbackFace
}

func (rm *ResourceManager) fail(key string, err error) error {
	rm.failed[key] = err
	return err
}

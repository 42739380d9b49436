package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG 解码器注册
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/rpgmenu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// ResourceManager 资源管理器
// 职责：
//   - 加载并缓存图片与音频资源
//   - 维护资源ID → 文件路径映射（来自 assets/config/resources.yaml）
//
// 所有加载失败都返回错误给调用方处理，不 panic；
// 菜单运行时对缺失资源一律降级（纯色填充 / 静音）。
type ResourceManager struct {
	audioContext *audio.Context

	imageCache map[string]*ebiten.Image // 路径 -> 已加载图片
	audioCache map[string]*audio.Player // 路径 -> 循环 BGM 播放器
	soundCache map[string]*audio.Player // 路径 -> 单次音效播放器

	config      *ResourceConfig   // 资源配置（可为 nil）
	resourceMap map[string]string // 资源ID -> 完整文件路径
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
// It should be created once at game startup with a sample rate of 48000 Hz.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		soundCache:   make(map[string]*audio.Player),
		resourceMap:  make(map[string]string),
	}
}

// LoadResourceConfig 加载资源配置文件并构建资源ID映射
//
// 参数：
//   - configPath: 配置文件路径（如 "assets/config/resources.yaml"）
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal resource config %s: %w", configPath, err)
	}

	rm.config = &cfg
	rm.buildResourceMap()
	log.Printf("[ResourceManager] Loaded resource config: %d ids", len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
// The mapping combines the base path with each resource's relative path.
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = filepath.ToSlash(filepath.Join(rm.config.BasePath, img.Path))
		}
		for _, snd := range group.Sounds {
			rm.resourceMap[snd.ID] = filepath.ToSlash(filepath.Join(rm.config.BasePath, snd.Path))
		}
	}
}

// PathForID 返回资源ID对应的文件路径
// 未知ID返回空字符串
func (rm *ResourceManager) PathForID(resourceID string) string {
	return rm.resourceMap[resourceID]
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImageByID 通过资源ID获取图片，未加载时尝试加载
// 加载失败返回 nil（调用方降级为纯色填充）
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path := rm.PathForID(resourceID)
	if path == "" {
		return nil
	}
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load image %s: %v", resourceID, err)
		return nil
	}
	return img
}

// LoadAudio loads an audio file from the specified path and caches it for future use.
// The stream is wrapped in an infinite loop, making it suitable for background music.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a sound effect from the specified path and caches it.
// Unlike LoadAudio, this method does NOT wrap the audio in an infinite loop,
// making it suitable for one-shot sound effects like cursor clicks.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.soundCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create sound player for %s: %w", path, err)
	}

	rm.soundCache[path] = player
	return player, nil
}

// audioStream 已解码的音频流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 读取并按扩展名解码音频文件
// 整个文件读入内存，避免持有文件句柄（嵌入资源不支持长期打开）
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	reader := bytes.NewReader(audioData)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// GetAudioPlayerByID 通过资源ID获取循环 BGM 播放器，未加载时尝试加载
// 加载失败返回 nil（调用方降级为静音）
func (rm *ResourceManager) GetAudioPlayerByID(resourceID string) *audio.Player {
	path := rm.PathForID(resourceID)
	if path == "" {
		log.Printf("[ResourceManager] Warning: unknown audio id: %s", resourceID)
		return nil
	}
	player, err := rm.LoadAudio(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load audio %s: %v", resourceID, err)
		return nil
	}
	return player
}

// GetSoundPlayerByID 通过资源ID获取单次音效播放器
func (rm *ResourceManager) GetSoundPlayerByID(resourceID string) *audio.Player {
	path := rm.PathForID(resourceID)
	if path == "" {
		return nil
	}
	player, err := rm.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load sound %s: %v", resourceID, err)
		return nil
	}
	return player
}

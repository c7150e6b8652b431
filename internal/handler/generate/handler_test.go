package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/output"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/secrets"
)

// stubPipeline 可编程的流水线桩
type stubPipeline struct {
	characterRefs trailer.CharacterRefMap
	refsErr       error
	videoPaths    []string
	videosErr     error
	trailerPath   string
	stitchErr     error

	refsCalls   int
	videosCalls int
	stitchCalls int

	gotImageKey string
	gotVeoKey   string
	gotRefs     trailer.CharacterRefMap
	gotStitch   []string
}

func (s *stubPipeline) GenerateCharacterReferences(_ context.Context, imageAPIKey string, _ []trailer.CharacterDesign) (trailer.CharacterRefMap, error) {
	s.refsCalls++
	s.gotImageKey = imageAPIKey
	if s.refsErr != nil {
		return nil, s.refsErr
	}
	return s.characterRefs, nil
}

func (s *stubPipeline) GenerateSceneVideos(_ context.Context, imageAPIKey, veoAPIKey string, _ []trailer.Scene, characterRefs trailer.CharacterRefMap) ([]string, error) {
	s.videosCalls++
	s.gotImageKey = imageAPIKey
	s.gotVeoKey = veoAPIKey
	s.gotRefs = characterRefs
	if s.videosErr != nil {
		return nil, s.videosErr
	}
	return s.videoPaths, nil
}

func (s *stubPipeline) StitchVideos(_ context.Context, videoPaths []string) (string, error) {
	s.stitchCalls++
	s.gotStitch = videoPaths
	if s.stitchErr != nil {
		return "", s.stitchErr
	}
	return s.trailerPath, nil
}

type testEnv struct {
	router *gin.Engine
	stub   *stubPipeline
	layout *output.Layout
	tmpDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpDir := t.TempDir()
	env := &testEnv{
		stub:   &stubPipeline{},
		layout: output.NewLayout(filepath.Join(tmpDir, "output")),
		tmpDir: tmpDir,
	}

	secretPath := filepath.Join(tmpDir, "secret.json")
	handler := NewHandler(env.stub, secrets.NewResolver(secretPath), env.layout)

	router := gin.New()
	router.POST("/generate/character-references", handler.CharacterReferences)
	router.POST("/generate/scene-videos", handler.SceneVideos)
	router.POST("/generate/trailer", handler.Trailer)
	env.router = router

	return env
}

func (env *testEnv) writeSecret(t *testing.T, apiKey string) {
	t.Helper()
	secretPath := filepath.Join(env.tmpDir, "secret.json")
	payload := fmt.Sprintf(`{"project_api_key": %q}`, apiKey)
	if err := os.WriteFile(secretPath, []byte(payload), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}
}

func (env *testEnv) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

const validScene = `{
	"scene_number": 1,
	"scene_type": "opening",
	"duration_seconds": 5,
	"start_frame_prompt": "start",
	"end_frame_prompt": "end",
	"video_prompt": "video",
	"reference_images": ["Hero"]
}`

func TestCharacterReferences(t *testing.T) {
	designs := `[{"character_name": "Hero", "image_generation_prompt": "a hero"}]`

	t.Run("returns character refs from the pipeline", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.characterRefs = trailer.CharacterRefMap{"Hero": "output/refs/Hero.png"}

		recorder := env.post(t, "/generate/character-references",
			`{"character_designs": `+designs+`, "image_api_key": "ik"}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}

		var resp CharacterReferenceResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.CharacterRefs["Hero"] != "output/refs/Hero.png" {
			t.Errorf("character_refs = %v", resp.CharacterRefs)
		}
		if env.stub.gotImageKey != "ik" {
			t.Errorf("image key = %q, want %q", env.stub.gotImageKey, "ik")
		}
	})

	t.Run("falls back to the secret file key", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeSecret(t, "k1")
		env.stub.characterRefs = trailer.CharacterRefMap{}

		recorder := env.post(t, "/generate/character-references",
			`{"character_designs": `+designs+`}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if env.stub.gotImageKey != "k1" {
			t.Errorf("image key = %q, want %q", env.stub.gotImageKey, "k1")
		}
	})

	t.Run("missing key everywhere is a 400 naming the key", func(t *testing.T) {
		env := newTestEnv(t)

		recorder := env.post(t, "/generate/character-references",
			`{"character_designs": `+designs+`}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "image_api_key") {
			t.Errorf("body does not name the missing key: %s", recorder.Body.String())
		}
		if env.stub.refsCalls != 0 {
			t.Errorf("pipeline called %d times, want 0", env.stub.refsCalls)
		}
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		env := newTestEnv(t)
		recorder := env.post(t, "/generate/character-references", `{"image_api_key": "ik"}`)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("delegate validation failure maps to 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.refsErr = pipeline.Invalidf("bad design")

		recorder := env.post(t, "/generate/character-references",
			`{"character_designs": `+designs+`, "image_api_key": "ik"}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "bad design") {
			t.Errorf("body = %s", recorder.Body.String())
		}
	})

	t.Run("unexpected delegate failure maps to 500 with the message verbatim", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.refsErr = fmt.Errorf("provider exploded")

		recorder := env.post(t, "/generate/character-references",
			`{"character_designs": `+designs+`, "image_api_key": "ik"}`)

		if recorder.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "provider exploded") {
			t.Errorf("body = %s", recorder.Body.String())
		}
	})
}

func TestSceneVideos(t *testing.T) {
	t.Run("uses provided character refs and returns video paths", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.videoPaths = []string{"output/scenes/scene_01.mp4"}

		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+validScene+`], "image_api_key": "ik",
			  "character_refs": {"Hero": "refs/Hero.png"}}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}

		var resp SceneVideoResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(resp.VideoPaths) != 1 || resp.VideoPaths[0] != "output/scenes/scene_01.mp4" {
			t.Errorf("video_paths = %v", resp.VideoPaths)
		}
		if env.stub.gotRefs["Hero"] != "refs/Hero.png" {
			t.Errorf("refs passed to pipeline = %v", env.stub.gotRefs)
		}
	})

	t.Run("veo key falls back to the image key", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.videoPaths = []string{}

		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+validScene+`], "image_api_key": "ik",
			  "character_refs": {"Hero": "refs/Hero.png"}}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if env.stub.gotVeoKey != "ik" {
			t.Errorf("veo key = %q, want fallback to %q", env.stub.gotVeoKey, "ik")
		}
	})

	t.Run("incomplete provided refs list every missing name", func(t *testing.T) {
		env := newTestEnv(t)

		scene2 := strings.Replace(validScene, `["Hero"]`, `["Hero", "Villain"]`, 1)
		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+scene2+`], "image_api_key": "ik",
			  "character_refs": {"Sidekick": "refs/Sidekick.png"}}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		body := recorder.Body.String()
		if !strings.Contains(body, "Hero") || !strings.Contains(body, "Villain") {
			t.Errorf("body does not list all missing names: %s", body)
		}
		if env.stub.videosCalls != 0 {
			t.Errorf("pipeline called %d times, want 0", env.stub.videosCalls)
		}
	})

	t.Run("autoload disabled with references is a 400", func(t *testing.T) {
		env := newTestEnv(t)

		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+validScene+`], "image_api_key": "ik", "autoload_refs": false}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("autoload resolves refs from the output directory", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.videoPaths = []string{"output/scenes/scene_01.mp4"}

		if err := env.layout.EnsureDirs(); err != nil {
			t.Fatal(err)
		}
		refPath := env.layout.RefPath("Hero")
		if err := os.WriteFile(refPath, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}

		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+validScene+`], "image_api_key": "ik"}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if env.stub.gotRefs["Hero"] != refPath {
			t.Errorf("autoloaded refs = %v, want Hero -> %s", env.stub.gotRefs, refPath)
		}
	})

	t.Run("autoload miss is a 400 naming the character", func(t *testing.T) {
		env := newTestEnv(t)

		recorder := env.post(t, "/generate/scene-videos",
			`{"scenes": [`+validScene+`], "image_api_key": "ik"}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "Hero") {
			t.Errorf("body = %s", recorder.Body.String())
		}
	})
}

func TestTrailer(t *testing.T) {
	trailerBody := func(extra string) string {
		return `{"character_designs": [{"character_name": "Hero", "image_generation_prompt": "a hero"}],
		  "scenes": [` + validScene + `], "image_api_key": "ik"` + extra + `}`
	}

	t.Run("generates refs, videos and a stitched trailer", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.characterRefs = trailer.CharacterRefMap{"Hero": "refs/Hero.png"}
		env.stub.videoPaths = []string{"scenes/scene_01.mp4"}
		env.stub.trailerPath = "output/trailer_no_audio.mp4"

		recorder := env.post(t, "/generate/trailer", trailerBody(""))

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}

		var resp TrailerGenerationResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.TrailerPath == nil || *resp.TrailerPath != "output/trailer_no_audio.mp4" {
			t.Errorf("trailer_path = %v", resp.TrailerPath)
		}
		// 分镜视频直接使用刚生成的参考图映射
		if env.stub.gotRefs["Hero"] != "refs/Hero.png" {
			t.Errorf("refs passed to scene generation = %v", env.stub.gotRefs)
		}
		if env.stub.stitchCalls != 1 {
			t.Errorf("stitch calls = %d, want 1", env.stub.stitchCalls)
		}
		if len(env.stub.gotStitch) != 1 || env.stub.gotStitch[0] != "scenes/scene_01.mp4" {
			t.Errorf("stitched input = %v", env.stub.gotStitch)
		}
	})

	t.Run("stitch_trailer=false returns null trailer_path and skips stitching", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.characterRefs = trailer.CharacterRefMap{"Hero": "refs/Hero.png"}
		env.stub.videoPaths = []string{"scenes/scene_01.mp4"}

		recorder := env.post(t, "/generate/trailer", trailerBody(`, "stitch_trailer": false`))

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(recorder.Body.Bytes(), &raw); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if string(raw["trailer_path"]) != "null" {
			t.Errorf("trailer_path = %s, want null", raw["trailer_path"])
		}
		if env.stub.stitchCalls != 0 {
			t.Errorf("stitch calls = %d, want 0", env.stub.stitchCalls)
		}
	})

	t.Run("scene generation failure aborts before stitching", func(t *testing.T) {
		env := newTestEnv(t)
		env.stub.characterRefs = trailer.CharacterRefMap{"Hero": "refs/Hero.png"}
		env.stub.videosErr = fmt.Errorf("veo unavailable")

		recorder := env.post(t, "/generate/trailer", trailerBody(""))

		if recorder.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "veo unavailable") {
			t.Errorf("body = %s", recorder.Body.String())
		}
		if env.stub.stitchCalls != 0 {
			t.Errorf("stitch calls = %d, want 0", env.stub.stitchCalls)
		}
	})
}

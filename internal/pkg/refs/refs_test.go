package refs

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AC215-TarAIntino/Video-Generator/internal/model/trailer"
	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

func scenesWithRefs(refLists ...[]string) []trailer.Scene {
	scenes := make([]trailer.Scene, len(refLists))
	for i, refList := range refLists {
		scenes[i] = trailer.Scene{
			SceneNumber:      i + 1,
			SceneType:        "action",
			DurationSeconds:  5,
			StartFramePrompt: "start",
			EndFramePrompt:   "end",
			VideoPrompt:      "video",
			ReferenceImages:  refList,
		}
	}
	return scenes
}

func TestCollectReferencedCharacters(t *testing.T) {
	Convey("CollectReferencedCharacters 按首次出现顺序去重", t, func() {
		Convey("跨分镜去重，保持首次出现顺序", func() {
			scenes := scenesWithRefs([]string{"A", "B"}, []string{"B", "C"})
			So(CollectReferencedCharacters(scenes), ShouldResemble, []string{"A", "B", "C"})
		})

		Convey("分镜内重复也只出现一次", func() {
			scenes := scenesWithRefs([]string{"A", "A", "B"}, []string{"A"})
			So(CollectReferencedCharacters(scenes), ShouldResemble, []string{"A", "B"})
		})

		Convey("不排序，保持输入顺序", func() {
			scenes := scenesWithRefs([]string{"Zed"}, []string{"Amy"})
			So(CollectReferencedCharacters(scenes), ShouldResemble, []string{"Zed", "Amy"})
		})

		Convey("空输入返回空", func() {
			So(CollectReferencedCharacters(nil), ShouldBeEmpty)
			So(CollectReferencedCharacters(scenesWithRefs(nil, nil)), ShouldBeEmpty)
		})
	})
}

func TestBuildCharacterRefMap_ProvidedRefs(t *testing.T) {
	Convey("调用方提供了 character_refs", t, func() {
		scenes := scenesWithRefs([]string{"A", "B"}, []string{"B", "C"})

		Convey("覆盖所有引用时原样返回，多余条目保留", func() {
			provided := trailer.CharacterRefMap{
				"A": "refs/A.png", "B": "refs/B.png", "C": "refs/C.png",
				"Unused": "refs/Unused.png",
			}
			got, err := BuildCharacterRefMap(scenes, provided, true, "ignored")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, provided)
		})

		Convey("缺失时一次性列出全部缺失角色", func() {
			provided := trailer.CharacterRefMap{"B": "refs/B.png"}
			_, err := BuildCharacterRefMap(scenes, provided, true, "ignored")
			So(err, ShouldNotBeNil)
			So(pipeline.IsValidation(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "A")
			So(err.Error(), ShouldContainSubstring, "C")
		})
	})
}

func TestBuildCharacterRefMap_AutoloadDisabled(t *testing.T) {
	Convey("未提供映射且 autoload 关闭", t, func() {
		Convey("存在引用时报错", func() {
			scenes := scenesWithRefs([]string{"A"})
			_, err := BuildCharacterRefMap(scenes, nil, false, "ignored")
			So(err, ShouldNotBeNil)
			So(pipeline.IsValidation(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "character_refs")
		})

		Convey("无引用时返回空映射", func() {
			scenes := scenesWithRefs(nil)
			got, err := BuildCharacterRefMap(scenes, nil, false, "ignored")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, trailer.CharacterRefMap{})
		})
	})
}

func TestBuildCharacterRefMap_Autoload(t *testing.T) {
	Convey("autoload 开启时从参考图目录探测", t, func() {
		refsDir := t.TempDir()
		writeRef := func(name string) string {
			refPath := filepath.Join(refsDir, name+".png")
			So(os.WriteFile(refPath, []byte("png"), 0o644), ShouldBeNil)
			return refPath
		}

		Convey("所有参考图都存在时返回路径映射", func() {
			pathA := writeRef("A")
			pathB := writeRef("B")
			scenes := scenesWithRefs([]string{"A"}, []string{"B", "A"})

			got, err := BuildCharacterRefMap(scenes, nil, true, refsDir)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, trailer.CharacterRefMap{"A": pathA, "B": pathB})
		})

		Convey("缺失参考图时报错并指出角色和期望路径", func() {
			writeRef("A")
			scenes := scenesWithRefs([]string{"A", "Missing"})

			_, err := BuildCharacterRefMap(scenes, nil, true, refsDir)
			So(err, ShouldNotBeNil)
			So(pipeline.IsValidation(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "'Missing'")
			So(err.Error(), ShouldContainSubstring, filepath.Join(refsDir, "Missing.png"))
		})

		Convey("无引用时返回空映射", func() {
			got, err := BuildCharacterRefMap(scenesWithRefs(nil), nil, true, refsDir)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, trailer.CharacterRefMap{})
		})
	})
}

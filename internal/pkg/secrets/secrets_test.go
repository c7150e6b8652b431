package secrets

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AC215-TarAIntino/Video-Generator/internal/pkg/pipeline"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()
	secretPath := filepath.Join(t.TempDir(), "secret.json")
	if err := os.WriteFile(secretPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}
	return secretPath
}

func TestLoadDefaultKey(t *testing.T) {
	Convey("LoadDefaultKey 读取 secret 文件", t, func() {
		Convey("文件不存在返回空串且无错误", func() {
			resolver := NewResolver(filepath.Join(t.TempDir(), "absent.json"))
			apiKey, err := resolver.LoadDefaultKey()
			So(err, ShouldBeNil)
			So(apiKey, ShouldBeEmpty)
		})

		Convey("文件无法解析按服务器内部错误处理", func() {
			resolver := NewResolver(writeSecret(t, "{not json"))
			_, err := resolver.LoadDefaultKey()
			So(err, ShouldNotBeNil)
			So(pipeline.IsValidation(err), ShouldBeFalse)
			So(err.Error(), ShouldContainSubstring, "format")
		})

		Convey("缺少 project_api_key 字段返回空串", func() {
			resolver := NewResolver(writeSecret(t, `{"other_key": "x"}`))
			apiKey, err := resolver.LoadDefaultKey()
			So(err, ShouldBeNil)
			So(apiKey, ShouldBeEmpty)
		})

		Convey("返回 project_api_key 字段", func() {
			resolver := NewResolver(writeSecret(t, `{"project_api_key": "k1"}`))
			apiKey, err := resolver.LoadDefaultKey()
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "k1")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve 解析 API Key", t, func() {
		Convey("请求携带的 Key 优先于 secret 文件", func() {
			resolver := NewResolver(writeSecret(t, `{"project_api_key": "k1"}`))
			apiKey, err := resolver.Resolve("override", "image_api_key")
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "override")
		})

		Convey("请求未携带时回退到 secret 文件默认 Key", func() {
			resolver := NewResolver(writeSecret(t, `{"project_api_key": "k1"}`))
			apiKey, err := resolver.Resolve("", "image_api_key")
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "k1")
		})

		Convey("两者都缺失时返回指名 Key 的 ValidationError", func() {
			resolver := NewResolver(filepath.Join(t.TempDir(), "absent.json"))
			_, err := resolver.Resolve("", "veo_api_key")
			So(err, ShouldNotBeNil)
			So(pipeline.IsValidation(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "veo_api_key")
		})

		Convey("secret 文件每次解析都重新读取", func() {
			secretPath := writeSecret(t, `{"project_api_key": "k1"}`)
			resolver := NewResolver(secretPath)

			apiKey, err := resolver.Resolve("", "image_api_key")
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "k1")

			So(os.WriteFile(secretPath, []byte(`{"project_api_key": "k2"}`), 0o600), ShouldBeNil)

			apiKey, err = resolver.Resolve("", "image_api_key")
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "k2")
		})
	})
}

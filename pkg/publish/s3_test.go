package publish

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quill-dev/quill/pkg/html"
	"github.com/quill-dev/quill/pkg/render"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, in)
	return &s3.PutObjectOutput{}, nil
}

func TestPublishNode(t *testing.T) {
	putter := &fakePutter{}
	p := New(putter, "site-bucket", "pages", nil)

	node := html.P("hello & goodbye")
	if err := p.PublishNode(context.Background(), "index.html", node); err != nil {
		t.Fatalf("PublishNode: %v", err)
	}

	if len(putter.inputs) != 1 {
		t.Fatalf("got %d uploads, want 1", len(putter.inputs))
	}
	in := putter.inputs[0]
	if got := *in.Bucket; got != "site-bucket" {
		t.Errorf("bucket = %q", got)
	}
	if got := *in.Key; got != "pages/index.html" {
		t.Errorf("key = %q, want %q", got, "pages/index.html")
	}
	if got := *in.ContentType; got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatal(err)
	}
	want, err := render.String(html.P("hello & goodbye"))
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if in.Metadata["rendered-at"] == "" {
		t.Error("rendered-at metadata missing")
	}
}

func TestPublishNodeEmptyPrefix(t *testing.T) {
	putter := &fakePutter{}
	p := New(putter, "b", "", nil)

	if err := p.PublishNode(context.Background(), "index.html", html.P("x")); err != nil {
		t.Fatal(err)
	}
	if got := *putter.inputs[0].Key; got != "index.html" {
		t.Errorf("key = %q, want %q", got, "index.html")
	}
}

func TestPublishNodePutFailure(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	p := New(putter, "b", "", nil)

	err := p.PublishNode(context.Background(), "index.html", html.P("x"))
	if err == nil {
		t.Fatal("PublishNode succeeded despite put failure")
	}
}

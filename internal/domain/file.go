package domain

import (
	"context"
	"io"

	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/storage"
	"github.com/bigex/backend/pkg/xcontext"
)

type FileDomain interface {
	UploadImage(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	storage storage.Storage
}

func NewFileDomain(storage storage.Storage) *fileDomain {
	return &fileDomain{storage: storage}
}

// UploadImage reads the "image" part of a multipart form and stores it
// in the object storage. The returned URL can be used as a profile
// picture, a post image, or an image message.
func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := httpReq.FormFile("image")
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Error retrieving the file")
	}
	defer file.Close()

	if header.Size > xcontext.Configs(ctx).File.MaxSize {
		return nil, errorx.New(errorx.BadRequest, "The file is too large")
	}

	mime := header.Header.Get("Content-Type")
	allowed := false
	for _, m := range xcontext.Configs(ctx).File.AllowedMimes {
		if m == mime {
			allowed = true
			break
		}
	}

	if !allowed {
		return nil, errorx.New(errorx.BadRequest, "We do not accept %s files", mime)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read file: %v", err)
		return nil, errorx.Unknown
	}

	resp, err := d.storage.Upload(ctx, &storage.UploadObject{
		Bucket:   xcontext.Configs(ctx).Storage.Bucket,
		Prefix:   "images",
		FileName: header.Filename,
		Mime:     mime,
		Data:     data,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadImageResponse{Url: resp.Url}, nil
}

package helper

import (
	"context"
	"fmt"
	"lottery_manager/config"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/valyala/fasthttp"
)

// ReceiptStore lưu ảnh biên lai và trả về chuỗi tham chiếu (đường dẫn hoặc URL)
type ReceiptStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	// Delete gỡ ảnh đã lưu khi không tạo được vé
	Delete(ctx context.Context, ref string) error
}

var Receipts ReceiptStore = &LocalReceiptStore{Dir: "uploads", URLPrefix: "/uploads"}

type LocalReceiptStore struct {
	Dir       string
	URLPrefix string
}

func (s *LocalReceiptStore) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create upload dir: %w", err)
	}
	name := receiptFileName(file.Filename)
	if err := fasthttp.SaveMultipartFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("cannot save receipt: %w", err)
	}
	return path.Join(s.URLPrefix, name), nil
}

func (s *LocalReceiptStore) Delete(_ context.Context, ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid receipt ref %q", ref)
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

type CloudinaryReceiptStore struct {
	cld    *cloudinary.Cloudinary
	Folder string
}

func NewCloudinaryReceiptStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryReceiptStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	return &CloudinaryReceiptStore{cld: cld, Folder: folder}, nil
}

func (s *CloudinaryReceiptStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("cannot read receipt: %w", err)
	}
	defer reader.Close()

	name := receiptFileName(file.Filename)
	result, err := s.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       s.Folder,
		PublicID:     strings.TrimSuffix(name, filepath.Ext(name)),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cannot upload receipt to cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

// Delete lấy lại public id từ secure URL: <folder>/<tên file không đuôi>
func (s *CloudinaryReceiptStore) Delete(ctx context.Context, ref string) error {
	base := path.Base(ref)
	publicID := strings.TrimSuffix(base, path.Ext(base))
	if s.Folder != "" {
		publicID = s.Folder + "/" + publicID
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, ResourceType: "image"})
	return err
}

// NewReceiptStoreFromConfig dùng Cloudinary khi đủ thông tin, ngược lại lưu xuống đĩa
func NewReceiptStoreFromConfig() (ReceiptStore, error) {
	cloudName := config.Config("CLOUDINARY_CLOUD_NAME")
	apiKey := config.Config("CLOUDINARY_API_KEY")
	apiSecret := config.Config("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return NewCloudinaryReceiptStore(cloudName, apiKey, apiSecret, config.ConfigOr("CLOUDINARY_FOLDER", "lottery/receipts"))
	}
	return &LocalReceiptStore{Dir: config.ConfigOr("UPLOAD_DIR", "uploads"), URLPrefix: "/uploads"}, nil
}

// DetectReceiptMIME sniffs the uploaded bytes, ignoring the client supplied content type.
func DetectReceiptMIME(file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}
	return mtype.String(), nil
}

func receiptFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "receipt"
	}
	return fmt.Sprintf("%s-%s%s", uuid.New().String()[:8], base, ext)
}

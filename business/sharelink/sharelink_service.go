package sharelink

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"myStyleShop/domain"
	"myStyleShop/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

var (
	ErrLinkInvalid = errors.New("invalid share link")
	ErrLinkExpired = errors.New("share link expired")
)

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

// Service mints and resolves the expiring tokens behind the storefront
// share button. The payload is productID|expiry, AES-encrypted so a
// link can be neither forged nor extended client-side.
type Service struct {
	productRepo ProductRepository
	key         string
	ttl         time.Duration
	baseURL     string
}

func NewService(productRepo ProductRepository, key string, ttl time.Duration, baseURL string) *Service {
	return &Service{
		productRepo: productRepo,
		key:         key,
		ttl:         ttl,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Create mints a share link for a visible product.
func (s *Service) Create(ctx context.Context, productID uint64) (domain.ShareLink, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShareLink{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product for share link", err)
		return domain.ShareLink{}, err
	}
	if !product.IsVisible {
		return domain.ShareLink{}, domain.ErrProductNotFound
	}

	expiresAt := time.Now().Add(s.ttl)

	payload := fmt.Sprintf("%v|%v", productID, expiresAt.Unix())
	payloadEncrypt, err := goshortcute.AESCBCEncrypt([]byte(payload), []byte(s.key))
	if err != nil {
		logger.Error("failed to encrypt share link payload", err)
		return domain.ShareLink{}, fmt.Errorf("failed to encrypt share link: %w", err)
	}
	token := goshortcute.StringtoBase64Encode(payloadEncrypt)

	return domain.ShareLink{
		ProductID: productID,
		Token:     token,
		URL:       s.baseURL + "/api/v1/share/" + token,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve turns a share token back into a product id. Tampered tokens
// come back ErrLinkInvalid, stale ones ErrLinkExpired.
func (s *Service) Resolve(ctx context.Context, token string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	strDecode := goshortcute.StringtoBase64Decode(token)
	if strDecode == "" {
		return 0, ErrLinkInvalid
	}

	payloadDecrypt, err := s.decrypt(strDecode)
	if err != nil {
		logger.Error("failed to decrypt share token", err)
		return 0, ErrLinkInvalid
	}

	parts := strings.Split(payloadDecrypt, "|")
	if len(parts) != 2 {
		logger.Error("malformed share token payload")
		return 0, ErrLinkInvalid
	}

	productID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		logger.Error("malformed product id in share token", err)
		return 0, ErrLinkInvalid
	}

	expiresAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		logger.Error("malformed expiry in share token", err)
		return 0, ErrLinkInvalid
	}

	if time.Now().Unix() > expiresAt {
		return 0, ErrLinkExpired
	}

	return productID, nil
}

// decrypt contains goshortcute's CBC unpadding: ciphertext that was
// never produced under this key decrypts to garbage whose padding
// byte can exceed the buffer length, and the unpad then panics on a
// bad slice bound. A share token comes straight off a public URL, so
// the panic is converted to an ordinary error here.
func (s *Service) decrypt(ciphertext string) (plaintext string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed ciphertext: %v", r)
		}
	}()

	return goshortcute.AESCBCDecrypt([]byte(ciphertext), []byte(s.key))
}

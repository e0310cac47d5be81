package post

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")
var ErrTitleTaken = errors.New("a post with this title already exists")

// PostRepository defines all database operations for posts.
type PostRepository interface {
	CreatePost(p *Post) error
	GetPostByID(id uint) (*Post, error)
	GetPostBySlug(slug string) (*Post, error)
	GetAllPosts(page, limit int) ([]Post, int64, error)
	TitleTaken(title string, excludeID uint) (bool, error)
	UpdatePost(p *Post) error
	DeletePost(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// CreatePost adds a new post, generating a unique slug from its title
func (r *postRepository) CreatePost(p *Post) error {
	base := slug.Make(p.Title)
	p.Slug = base
	var count int64
	if err := r.db.Model(&Post{}).Where("slug LIKE ?", base+"%").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		p.Slug = fmt.Sprintf("%s-%d", base, count+1)
	}
	return r.db.Create(p).Error
}

// GetPostByID retrieves a post by its ID
func (r *postRepository) GetPostByID(id uint) (*Post, error) {
	var p Post
	if err := r.db.Preload("Author").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetPostBySlug retrieves a post by its slug
func (r *postRepository) GetPostBySlug(slugStr string) (*Post, error) {
	var p Post
	if err := r.db.Preload("Author").Where("slug = ?", slugStr).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAllPosts retrieves posts with pagination, newest first
func (r *postRepository) GetAllPosts(page, limit int) ([]Post, int64, error) {
	var posts []Post
	var totalCount int64

	offset := (page - 1) * limit

	if err := r.db.Model(&Post{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Preload("Author").
		Order("published_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, totalCount, nil
}

// TitleTaken reports whether another post already uses this title,
// ignoring case
func (r *postRepository) TitleTaken(title string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&Post{}).Where("lower(title) = lower(?)", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePost persists changes to a post. The slug stays stable so links
// keep working.
func (r *postRepository) UpdatePost(p *Post) error {
	return r.db.Save(p).Error
}

// DeletePost removes a post
func (r *postRepository) DeletePost(id uint) error {
	result := r.db.Delete(&Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

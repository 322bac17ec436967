package sanity

import (
	"context"
	"sort"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

const productProjection = `{
  _id,
  title,
  "slug": slug.current,
  price,
  originalPrice,
  description,
  category,
  color,
  size,
  inStock,
  featured,
  isNew,
  "imageUrl": picture.asset->url,
  rating,
  reviews,
  _createdAt
}`

const traditionalProjection = `{
  _id,
  "title": name,
  "slug": slug.current,
  price,
  originalPrice,
  description,
  category,
  "color": colors[0],
  "size": sizes[0],
  inStock,
  "featured": false,
  isNew,
  "imageUrl": images[0].asset->url,
  rating,
  reviews,
  _createdAt
}`

const cityProjection = `{
  _id,
  name,
  "slug": slug.current,
  province,
  country,
  shippingCost,
  deliveryTime,
  isActive,
  description
}`

type productDoc struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Color         string   `json:"color"`
	Size          string   `json:"size"`
	InStock       *bool    `json:"inStock"`
	Featured      bool     `json:"featured"`
	IsNew         bool     `json:"isNew"`
	ImageURL      string   `json:"imageUrl"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	CreatedAt     string   `json:"_createdAt"`
}

func (d productDoc) toDomain() domain.Product {
	p := domain.Product{
		ID:          d.ID,
		Title:       d.Title,
		Slug:        d.Slug,
		Price:       money.FromRupees(d.Price),
		Description: d.Description,
		Category:    d.Category,
		Color:       d.Color,
		Size:        d.Size,
		InStock:     true,
		Featured:    d.Featured,
		IsNew:       d.IsNew,
		ImageURL:    d.ImageURL,
		Rating:      d.Rating,
		Reviews:     d.Reviews,
		CreatedAt:   d.CreatedAt,
	}
	// schema default is in stock
	if d.InStock != nil {
		p.InStock = *d.InStock
	}
	if d.OriginalPrice != nil {
		p.OriginalPrice = money.FromRupees(*d.OriginalPrice)
	}
	return p
}

type cityDoc struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Province     string  `json:"province"`
	Country      string  `json:"country"`
	ShippingCost float64 `json:"shippingCost"`
	DeliveryTime int     `json:"deliveryTime"`
	IsActive     bool    `json:"isActive"`
	Description  string  `json:"description"`
}

func (d cityDoc) toDomain() domain.City {
	return domain.City{
		ID:           d.ID,
		Name:         d.Name,
		Slug:         d.Slug,
		Province:     d.Province,
		Country:      d.Country,
		ShippingCost: money.FromRupees(d.ShippingCost),
		DeliveryDays: d.DeliveryTime,
		IsActive:     d.IsActive,
		Description:  d.Description,
	}
}

type portfolioDoc struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Sizes       []string `json:"sizes"`
	InStock     *bool    `json:"inStock"`
	IsNew       bool     `json:"isNew"`
	IsSale      bool     `json:"isSale"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images"`
}

// Repo implements the catalog read ports over a Sanity dataset.
type Repo struct {
	c *Client
}

func NewRepo(c *Client) *Repo {
	return &Repo{c: c}
}

func (r *Repo) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	conds := []string{`_type == "product"`}
	params := map[string]any{}

	if q.FeaturedOnly {
		conds = append(conds, "featured == true")
	}
	if q.NewOnly {
		conds = append(conds, "isNew == true")
	}
	if q.Category != "" {
		conds = append(conds, "category == $category")
		params["category"] = q.Category
	}
	if q.Color != "" {
		conds = append(conds, "color == $color")
		params["color"] = q.Color
	}
	if q.Size != "" {
		conds = append(conds, "size == $size")
		params["size"] = q.Size
	}

	groq := "*[" + strings.Join(conds, " && ") + "] | order(_createdAt desc)" + productProjection
	return r.products(ctx, groq, params)
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	return r.product(ctx, `*[_type == "product" && slug.current == $slug][0]`+productProjection, map[string]any{"slug": slug})
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.Product, error) {
	groq := `*[_type in ["product", "sindhiCape", "balochiDress"] && _id == $id][0]{
  _type == "product" => ` + productProjection + `,
  _type != "product" => ` + traditionalProjection + `
}`
	return r.product(ctx, groq, map[string]any{"id": id})
}

func (r *Repo) Search(ctx context.Context, term string) ([]domain.Product, error) {
	groq := `*[_type == "product" && (title match $term || description match $term)] | order(_createdAt desc)` + productProjection
	return r.products(ctx, groq, map[string]any{"term": "*" + term + "*"})
}

func (r *Repo) Traditional(ctx context.Context) ([]domain.Product, error) {
	groq := `*[_type in ["sindhiCape", "balochiDress"]] | order(_createdAt desc)` + traditionalProjection
	return r.products(ctx, groq, nil)
}

func (r *Repo) DistinctColors(ctx context.Context) ([]string, error) {
	return r.stringList(ctx, `array::unique(*[_type == "product" && defined(color)].color)`, nil)
}

func (r *Repo) DistinctSizes(ctx context.Context) ([]string, error) {
	return r.stringList(ctx, `array::unique(*[_type == "product" && defined(size)].size)`, nil)
}

func (r *Repo) ListActive(ctx context.Context, province string) ([]domain.City, error) {
	conds := `_type == "city" && isActive == true`
	params := map[string]any{}
	if province != "" {
		conds += " && province == $province"
		params["province"] = province
	}

	var docs []cityDoc
	if err := r.c.Query(ctx, "*["+conds+"] | order(name asc)"+cityProjection, params, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.City, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *Repo) GetBySlugCity(ctx context.Context, slug string) (domain.City, error) {
	var doc *cityDoc
	if err := r.c.Query(ctx, `*[_type == "city" && slug.current == $slug][0]`+cityProjection, map[string]any{"slug": slug}, &doc); err != nil {
		return domain.City{}, err
	}
	if doc == nil {
		return domain.City{}, app.ErrNotFound
	}
	return doc.toDomain(), nil
}

func (r *Repo) Provinces(ctx context.Context) ([]string, error) {
	return r.stringList(ctx, `array::unique(*[_type == "city" && isActive == true && defined(province)].province)`, nil)
}

func (r *Repo) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var docs []struct {
		ID           string `json:"_id"`
		CustomerName string `json:"customerName"`
		Testimonial  string `json:"testimonial"`
	}
	if err := r.c.Query(ctx, `*[_type == "customerTestimonial"] | order(_createdAt desc){_id, customerName, testimonial}`, nil, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Testimonial{ID: d.ID, CustomerName: d.CustomerName, Text: d.Testimonial})
	}
	return out, nil
}

func (r *Repo) Portfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	groq := `*[_type == "portfolio"] | order(_createdAt desc){
  _id, title, description, price, category, color, sizes, inStock, isNew, isSale, rating, reviews, featured,
  "images": images[].asset->url
}`
	var docs []portfolioDoc
	if err := r.c.Query(ctx, groq, nil, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.PortfolioItem, 0, len(docs))
	for _, d := range docs {
		inStock := true
		if d.InStock != nil {
			inStock = *d.InStock
		}
		out = append(out, domain.PortfolioItem{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Price:       money.FromRupees(d.Price),
			Category:    d.Category,
			Color:       d.Color,
			Sizes:       d.Sizes,
			InStock:     inStock,
			IsNew:       d.IsNew,
			IsSale:      d.IsSale,
			Rating:      d.Rating,
			Reviews:     d.Reviews,
			Featured:    d.Featured,
			ImageURLs:   d.Images,
		})
	}
	return out, nil
}

func (r *Repo) products(ctx context.Context, groq string, params map[string]any) ([]domain.Product, error) {
	var docs []productDoc
	if err := r.c.Query(ctx, groq, params, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *Repo) product(ctx context.Context, groq string, params map[string]any) (domain.Product, error) {
	var doc *productDoc
	if err := r.c.Query(ctx, groq, params, &doc); err != nil {
		return domain.Product{}, err
	}
	if doc == nil {
		return domain.Product{}, app.ErrNotFound
	}
	return doc.toDomain(), nil
}

func (r *Repo) stringList(ctx context.Context, groq string, params map[string]any) ([]string, error) {
	var vals []string
	if err := r.c.Query(ctx, groq, params, &vals); err != nil {
		return nil, err
	}
	sort.Strings(vals)
	return vals, nil
}

// Cities adapts the repo to the CityRepo port, whose GetBySlug would
// otherwise collide with the product lookup.
func (r *Repo) Cities() app.CityRepo {
	return cityRepo{r}
}

type cityRepo struct{ r *Repo }

func (c cityRepo) ListActive(ctx context.Context, province string) ([]domain.City, error) {
	return c.r.ListActive(ctx, province)
}

func (c cityRepo) GetBySlug(ctx context.Context, slug string) (domain.City, error) {
	return c.r.GetBySlugCity(ctx, slug)
}

func (c cityRepo) Provinces(ctx context.Context) ([]string, error) {
	return c.r.Provinces(ctx)
}

package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ZeroValue(t *testing.T) {
	var p Product

	assert.Equal(t, int64(0), p.ID)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Description)
	assert.True(t, p.Price.IsZero())
	assert.Nil(t, p.ImageUrl)
}

func TestProduct_ID(t *testing.T) {
	for _, id := range []int64{1, 100, math.MaxInt64, 0, -1, math.MinInt64} {
		p := Product{}
		p.ID = id
		assert.Equal(t, id, p.ID)
	}
}

func TestProduct_StringFields(t *testing.T) {
	values := []string{
		"Tent",
		"Camping Gear",
		"A durable 4-person camping tent",
		"https://example.com/image.jpg",
		"/images/product1.png",
		"data:image/png;base64,iVBORw0KGgo=",
		"",
		"   ",
	}

	fields := map[string]func(p *Product) **string{
		"name":        func(p *Product) **string { return &p.Name },
		"description": func(p *Product) **string { return &p.Description },
		"imageUrl":    func(p *Product) **string { return &p.ImageUrl },
	}

	for name, field := range fields {
		t.Run(name, func(t *testing.T) {
			for _, v := range values {
				p := &Product{}
				*field(p) = String(v)
				require.NotNil(t, *field(p))
				assert.Equal(t, v, **field(p))
			}

			p := &Product{}
			*field(p) = String("something")
			*field(p) = nil
			assert.Nil(t, *field(p))
		})
	}
}

func TestProduct_Price(t *testing.T) {
	cases := []string{
		"0",
		"19.99",
		"-1.00",
		"-99.99",
		"123.456789",
		"79228162514264337593543950335",
		"0.000000000000000000000001",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			want := decimal.RequireFromString(c)
			p := Product{}
			p.Price = want
			assert.True(t, want.Equal(p.Price))
			assert.Equal(t, want.String(), p.Price.String())
		})
	}
}

func TestProduct_AllFields(t *testing.T) {
	p := Product{
		ID:          42,
		Name:        String("Camping Tent"),
		Description: String("A durable 4-person camping tent"),
		Price:       decimal.RequireFromString("199.99"),
		ImageUrl:    String("https://example.com/tent.jpg"),
	}

	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, "Camping Tent", *p.Name)
	assert.Equal(t, "A durable 4-person camping tent", *p.Description)
	assert.Equal(t, "199.99", p.Price.String())
	assert.Equal(t, "https://example.com/tent.jpg", *p.ImageUrl)
}

func TestProduct_Overwrite(t *testing.T) {
	dst := &Product{ID: 7, Name: String("Old"), Price: decimal.NewFromInt(1)}
	src := &Product{ID: 99, Name: String("New"), Description: String("desc"), Price: decimal.RequireFromString("2.50")}

	dst.Overwrite(src)

	assert.Equal(t, int64(7), dst.ID)
	assert.Equal(t, "New", *dst.Name)
	assert.Equal(t, "desc", *dst.Description)
	assert.Equal(t, "2.5", dst.Price.String())
	assert.Nil(t, dst.ImageUrl)

	// no aliasing with the source
	*src.Name = "Changed"
	assert.Equal(t, "New", *dst.Name)
}

func TestProduct_CloneEqual(t *testing.T) {
	p := &Product{ID: 3, Name: String("Lantern"), Price: decimal.RequireFromString("19.99")}
	c := p.Clone()

	assert.True(t, p.Equal(c))
	c.Price = decimal.RequireFromString("19.990")
	assert.True(t, p.Equal(c))
	c.ImageUrl = String("")
	assert.False(t, p.Equal(c))
	assert.True(t, (*Product)(nil).Equal(nil))
	assert.False(t, p.Equal(nil))
}

func TestProduct_JSON(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		p := Product{ID: 1, Name: String("Backpack"), Price: decimal.RequireFromString("89.50")}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"Backpack","description":null,"price":89.5,"imageUrl":null}`, string(data))
	})

	t.Run("decode", func(t *testing.T) {
		var p Product
		err := json.Unmarshal([]byte(`{"id":5,"name":null,"description":"d","price":123.456789,"imageUrl":"/images/backpack.png"}`), &p)
		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
		assert.Nil(t, p.Name)
		assert.Equal(t, "d", *p.Description)
		assert.Equal(t, "123.456789", p.Price.String())
		assert.Equal(t, "/images/backpack.png", *p.ImageUrl)
	})

	t.Run("decode quoted price", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"price":"-99.99"}`), &p))
		assert.Equal(t, "-99.99", p.Price.String())
	})
}

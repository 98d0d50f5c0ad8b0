package convert

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// Category defaults.
const (
	DefaultCategoryKey  = "default"
	DefaultCategoryIcon = "minecraft:stone"
)

// category converts one category. Listed ids are moved into the target
// namespace; the icon too, unless it is a vanilla id.
func (r *run) category(key string, c source.Category) {
	name := c.Name
	if name == "" {
		name = key
	}

	list := make([]string, 0, len(c.Items))
	for _, id := range c.Items {
		list = append(list, requalify(r.ns, id))
	}

	icon := c.Icon
	if icon == "" {
		icon = DefaultCategoryIcon
	}

	r.out.Categories.Set(qualify(r.ns, key), &Category{
		Name:     "<!i>" + name,
		Lore:     r.lore(),
		Priority: r.cfg.CategoryPriority,
		Icon:     r.categoryIcon(icon),
		List:     list,
		Hidden:   !c.IsEnabled(),
	})
}

func (r *run) categoryIcon(icon string) string {
	if !strings.Contains(icon, ":") {
		return qualify(r.ns, icon)
	}
	parts := strings.Split(icon, ":")
	if len(parts) == 2 && parts[0] != model.VanillaNamespace {
		return qualify(r.ns, parts[1])
	}
	return icon
}

// defaultCategory lists every converted item in one visible category. The
// icon is the first item if it has a model, else its material.
func (r *run) defaultCategory() {
	ids := r.out.Items.Keys()
	if len(ids) == 0 {
		return
	}

	icon := DefaultCategoryIcon
	if first, ok := r.out.Items.Get(ids[0]); ok {
		if first.Model != nil {
			icon = ids[0]
		} else {
			icon = first.Material
		}
	}

	r.out.Categories.Set(qualify(r.ns, DefaultCategoryKey), &Category{
		Name:     "<!i>" + capitalize(r.ns),
		Lore:     r.lore(),
		Priority: r.cfg.CategoryPriority,
		Icon:     icon,
		List:     ids,
		Hidden:   false,
	})
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "my-pack" becomes "My-pack".
func capitalize(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:n]) + cases.Lower(language.Und).String(s[n:])
}

func (r *run) lore() []string {
	if len(r.cfg.CategoryLore) == 0 {
		return nil
	}
	return append([]string(nil), r.cfg.CategoryLore...)
}

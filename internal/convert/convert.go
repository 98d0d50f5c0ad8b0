// Package convert turns an ItemsAdder configuration into a CraftEngine one.
//
// A Converter maps items, equipments and categories into an output Document
// and collects the flat item models it has to generate. Result.Save writes
// the configuration files, migrates the resource pack and then writes the
// generated models that the migration did not already produce.
package convert

import (
	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/config"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// Converter converts source documents. It holds settings only; every call to
// Convert builds its own output.
type Converter struct {
	cfg        config.Convert
	log        *zap.Logger
	sourcePack string
	targetPack string
}

// New returns a Converter. A nil logger discards output.
func New(cfg config.Convert, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{cfg: cfg, log: log}
}

// SetResourcePaths sets the source and target resource pack roots. The source
// pack feeds the furniture Y-offset estimate and the migration; the target
// pack receives migrated and generated assets. Either may be empty.
func (c *Converter) SetResourcePaths(sourcePack, targetPack string) {
	c.sourcePack = sourcePack
	c.targetPack = targetPack
}

// Result is the output of one Convert call.
type Result struct {
	Namespace string
	Document  *Document

	// Generated maps a models/-relative path ("item/<texture>.json") to the
	// flat model generated for it.
	Generated *Ordered[*model.Document]

	cfg        config.Convert
	log        *zap.Logger
	sourcePack string
	targetPack string
}

// run is the state of one conversion.
type run struct {
	cfg        config.Convert
	log        *zap.Logger
	ns         string
	sourcePack string

	out       *Document
	generated *Ordered[*model.Document]
}

// Convert converts doc into namespace, or into doc's info.namespace when
// namespace is empty. It fails with a *ConfigError when no namespace can be
// resolved or doc defines no items or armor layers.
func (c *Converter) Convert(doc *source.Document, namespace string) (*Result, error) {
	if namespace == "" && doc != nil {
		namespace = doc.Info.Namespace
	}
	if namespace == "" {
		return nil, &ConfigError{Err: ErrMissingNamespace}
	}
	if doc == nil || !doc.HasDefinitions() {
		return nil, &ConfigError{Err: ErrNoDefinitions}
	}

	r := &run{
		cfg:        c.cfg,
		log:        c.log.With(zap.String("namespace", namespace)),
		ns:         namespace,
		sourcePack: c.sourcePack,
		out:        NewDocument(),
		generated:  NewOrdered[*model.Document](),
	}

	for _, key := range doc.ItemKeys() {
		r.item(key, doc.Items[key])
	}
	for _, key := range doc.EquipmentKeys() {
		r.equipment(key, doc.Equipments[key])
	}
	for _, key := range doc.ArmorsRenderingKeys() {
		r.equipment(key, doc.ArmorsRendering[key])
	}
	for _, key := range doc.CategoryKeys() {
		r.category(key, doc.Categories[key])
	}
	if r.out.Categories.Len() == 0 && r.out.Items.Len() > 0 {
		r.defaultCategory()
	}
	if keys := doc.TemplateKeys(); len(keys) > 0 {
		r.log.Warn("item templates are not converted", zap.Strings("templates", keys))
	}

	r.log.Info("converted configuration",
		zap.Int("items", r.out.Items.Len()),
		zap.Int("equipments", r.out.Equipments.Len()),
		zap.Int("templates", r.out.Templates.Len()),
		zap.Int("categories", r.out.Categories.Len()),
		zap.Int("generated_models", r.generated.Len()))

	return &Result{
		Namespace:  namespace,
		Document:   r.out,
		Generated:  r.generated,
		cfg:        c.cfg,
		log:        r.log,
		sourcePack: c.sourcePack,
		targetPack: c.targetPack,
	}, nil
}

package compiler

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/afero"

	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/job"
)

const EntityCompiler = "compiler"

//go:embed config_maven.xml.tmpl
var mavenTemplate []byte

//go:embed config_free.xml.tmpl
var freeStyleTemplate []byte

// File is one generated configuration file, named relative to the output
// directory.
type File struct {
	Name    string
	Content []byte
}

// Compiler renders resolved jobs into scheduler native config.xml files.
type Compiler struct {
	mavenTemplate     *template.Template
	freeStyleTemplate *template.Template
}

func NewCompiler() (*Compiler, error) {
	maven, err := parseTemplate("config_maven", mavenTemplate)
	if err != nil {
		return nil, err
	}
	freeStyle, err := parseTemplate("config_free", freeStyleTemplate)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		mavenTemplate:     maven,
		freeStyleTemplate: freeStyle,
	}, nil
}

func parseTemplate(name string, raw []byte) (*template.Template, error) {
	if len(raw) == 0 {
		return nil, errors.InternalError(EntityCompiler, "template "+name+" is empty", nil)
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Funcs(jobForgeFuncMap()).Parse(string(raw))
	if err != nil {
		return nil, errors.InternalError(EntityCompiler, "unable to parse template "+name, err)
	}
	return tmpl, nil
}

// Compile renders the configuration file for one resolved job. The template
// is selected by job type; jobs that somehow reach this point without a
// type render as maven, the domain default.
func (c *Compiler) Compile(spec *job.Spec) (*File, error) {
	if spec == nil {
		return nil, errors.InvalidArgument(EntityCompiler, "spec is nil")
	}

	tmpl := c.mavenTemplate
	if spec.JobType != nil && *spec.JobType == job.JobTypeFree {
		tmpl = c.freeStyleTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildTemplateContext(spec)); err != nil {
		return nil, errors.InternalError(EntityCompiler, "unable to compile configuration for job "+spec.ID, err)
	}

	return &File{
		Name:    filepath.Join(spec.ID, "config.xml"),
		Content: buf.Bytes(),
	}, nil
}

// WriteFile writes a generated file under outputDir, creating parent
// directories as needed.
func WriteFile(fs afero.Fs, outputDir string, f *File) error {
	if f == nil {
		return errors.InvalidArgument(EntityCompiler, "file is nil")
	}
	filePath := filepath.Join(outputDir, f.Name)
	if err := fs.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.InternalError(EntityCompiler, "unable to create output directory for "+f.Name, err)
	}
	if err := afero.WriteFile(fs, filePath, f.Content, 0o644); err != nil {
		return errors.InternalError(EntityCompiler, "unable to write "+f.Name, err)
	}
	return nil
}

package opc

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Package 表示一个已打开的 OPC 包（zip 容器内的命名 XML 部件集合）
type Package struct {
	parts map[string][]byte
	names []string
}

// OpenPackage 从字节流打开 OPC 包
// 输入不是合法 zip 时返回 ErrMalformedPackage
func OpenPackage(data []byte) (*Package, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(ErrMalformedPackage, "input is not a valid zip archive")
	}

	parts := make(map[string][]byte, len(zipReader.File))
	names := make([]string, 0, len(zipReader.File))

	for _, file := range zipReader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPackage, "failed to open part %s", file.Name)
		}

		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPackage, "failed to read part %s", file.Name)
		}

		parts[file.Name] = content
		names = append(names, file.Name)
	}

	// 部件名排序，保证遍历顺序稳定
	sort.Strings(names)

	return &Package{
		parts: parts,
		names: names,
	}, nil
}

// MainDocument 解析主文档部件
// 部件缺失或不是合法 XML 时返回 ErrMalformedPackage
func (p *Package) MainDocument() (*etree.Document, error) {
	content, ok := p.parts[mainDocumentPartName]
	if !ok {
		return nil, errors.Wrap(ErrMalformedPackage, "main document part is missing")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, errors.Wrap(ErrMalformedPackage, "main document part is not valid XML")
	}

	return doc, nil
}

// SignatureOrigin 定位并解析数字签名源结构
// 没有签名源容器时返回 Present=false 和空子部件列表
// 任一签名子部件解析失败时整个请求失败（不产生部分结果）
func (p *Package) SignatureOrigin() (*SignatureOrigin, error) {
	origin := &SignatureOrigin{}

	if _, ok := p.parts[signatureOriginPartName]; !ok {
		return origin, nil
	}
	origin.Present = true

	for _, name := range p.names {
		if !strings.HasPrefix(name, signaturePartPrefix) || !strings.HasSuffix(name, ".xml") {
			continue
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(p.parts[name]); err != nil {
			return nil, errors.Wrapf(ErrMalformedSignaturePart, "signature part %s is not valid XML", name)
		}

		origin.Parts = append(origin.Parts, doc)
	}

	return origin, nil
}

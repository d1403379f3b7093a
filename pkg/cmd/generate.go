// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asterix-schema/astcodec/pkg/codegen"
	"github.com/asterix-schema/astcodec/pkg/loader"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate in_dir out_dir",
	Short: "Generate Go wire codecs for every schema in a directory.",
	Long:  "generate walks in_dir for ASTERIX Category schema XML files and writes one generated Go source file per category into out_dir.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		pkgname := GetString(cmd, "package")
		inDir, outDir := args[0], args[1]
		//
		if err := generateDirectory(inDir, outDir, pkgname); err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
	},
}

// generateDirectory walks inDir for *.xml schema files and writes a
// generated Go source file per category into outDir. When pkgname is
// empty, each file uses a package name derived from its category id.
func generateDirectory(inDir, outDir, pkgname string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	//
	var schemaFiles []string
	//
	err := filepath.WalkDir(inDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			schemaFiles = append(schemaFiles, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", inDir, err)
	}
	//
	if len(schemaFiles) == 0 {
		log.Warnf("no schema files found under %s", inDir)
	}
	//
	for _, path := range schemaFiles {
		if err := generateOne(path, outDir, pkgname); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	//
	return nil
}

func generateOne(schemaPath, outDir, pkgname string) error {
	cat, err := loader.Load(schemaPath)
	if err != nil {
		return err
	}
	//
	name := pkgname
	if name == "" {
		name = "astcat" + cat.ID
	}
	//
	log.Debugf("generating category %s as package %s", cat.ID, name)
	//
	src, err := codegen.Generate(cat, name)
	if err != nil {
		return fmt.Errorf("generating category %s: %w", cat.ID, err)
	}
	//
	outPath := filepath.Join(outDir, fmt.Sprintf("cat%s_gen.go", cat.ID))
	if err := os.WriteFile(outPath, []byte(src), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	//
	return nil
}

func init() {
	generateCmd.Flags().String("package", "", "Go package name for generated files (default: astcat<category>)")
	rootCmd.AddCommand(generateCmd)
}

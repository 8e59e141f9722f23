/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command gs1check decodes and validates GS1 element strings.
//
// Element strings are read one per line from the arguments or, if there are
// none, from stdin. Since terminals and files rarely carry the group separator
// well, it may be written as "<GS>" or "\x1d". For each input, gs1check writes
// a JSON object to stdout with its decoded fields or the reasons it failed,
// and exits with status 1 if any input failed.
//
//     gs1check -policy retail.yaml -gcp 7 ']d20109876543210982<GS>21SER'
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/epc"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/policy"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/validate"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	golog "log"
	"os"
	"strconv"
	"strings"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitBadArgs = 2
)

type options struct {
	policyPath   string
	loggingLevel string
	gs           string
	gcpLen       int
	failFast     bool
	failFastSet  bool
}

// result is written as one JSON line per input.
type result struct {
	ID     string            `json:"id"`
	Input  string            `json:"input"`
	Kind   string            `json:"kind,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	HRI    string            `json:"hri,omitempty"`
	EPC    string            `json:"epc,omitempty"`
	Errors []string          `json:"errors,omitempty"`
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	opts, inputs, err := parseArgs(args)
	if err != nil {
		log.WithFields(log.Fields{
			"Method": "parseArgs",
			"Action": "Parse flags",
		}).Error(err.Error())
		return exitBadArgs
	}

	setLoggingLevel(opts.loggingLevel)

	cfg, err := loadConfig(opts)
	if err != nil {
		log.WithFields(log.Fields{
			"Method": "loadConfig",
			"Action": "Load policy",
			"Policy": opts.policyPath,
		}).Error(err.Error())
		return exitBadArgs
	}

	gs, err := parseGroupSeparator(opts.gs)
	if err != nil {
		log.WithFields(log.Fields{
			"Method": "parseGroupSeparator",
			"Action": "Parse flags",
		}).Error(err.Error())
		return exitBadArgs
	}

	c := checker{
		parser:    elementstring.NewParser(elementstring.WithGroupSeparator(gs)),
		cfg:       cfg,
		gcpLen:    opts.gcpLen,
		unescaper: strings.NewReplacer("<GS>", string(gs), `\x1d`, string(gs)),
	}

	if len(inputs) == 0 {
		inputs, err = readLines(stdin)
		if err != nil {
			log.WithFields(log.Fields{
				"Method": "readLines",
				"Action": "Read input",
			}).Error(err.Error())
			return exitBadArgs
		}
	}

	enc := json.NewEncoder(stdout)
	failed := 0
	for _, input := range inputs {
		res := c.check(input)
		if len(res.Errors) > 0 {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			log.WithFields(log.Fields{
				"Method": "run",
				"Action": "Write result",
			}).Error(err.Error())
			return exitBadArgs
		}
	}

	log.WithFields(log.Fields{
		"Method": "run",
		"Action": "Check",
		"Inputs": len(inputs),
		"Failed": failed,
	}).Info("Completed.")

	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

func parseArgs(args []string) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("gs1check", flag.ContinueOnError)
	fs.StringVar(&opts.policyPath, "policy", "", "validation policy file (.json, .yaml, or .yml)")
	fs.StringVar(&opts.loggingLevel, "loggingLevel", "info", "one of error, warn, info, or debug")
	fs.StringVar(&opts.gs, "gs", "0x1d", "group separator, as a number or a single character")
	fs.IntVar(&opts.gcpLen, "gcp", 0, "GS1 Company Prefix length; if set, output EPC URIs")
	fs.BoolVar(&opts.failFast, "fail-fast", false, "stop validating an input after the first failing rule; overrides the policy")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "fail-fast" {
			opts.failFastSet = true
		}
	})
	if opts.gcpLen != 0 && (opts.gcpLen < epc.MinCompanyPrefixLen || opts.gcpLen > epc.MaxCompanyPrefixLen) {
		return opts, nil, errors.Errorf("-gcp must be in [%d,%d], but is %d",
			epc.MinCompanyPrefixLen, epc.MaxCompanyPrefixLen, opts.gcpLen)
	}
	return opts, fs.Args(), nil
}

func loadConfig(opts options) (validate.Config, error) {
	var doc policy.Document
	if opts.policyPath != "" {
		var err error
		if doc, err = policy.Load(opts.policyPath); err != nil {
			return validate.Config{}, err
		}
	}
	if opts.failFastSet {
		doc.FailFast = opts.failFast
	}
	return doc.Config()
}

// parseGroupSeparator accepts a number in any base strconv understands, or a
// single character.
func parseGroupSeparator(s string) (byte, error) {
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return byte(n), nil
	}
	if len(s) == 1 {
		return s[0], nil
	}
	return 0, errors.Errorf("-gs must be a byte value or a single character, but is %q", s)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Wrap(scanner.Err(), "unable to read input")
}

type checker struct {
	parser    *elementstring.Parser
	cfg       validate.Config
	gcpLen    int
	unescaper *strings.Replacer
}

func (c checker) check(input string) result {
	res := result{ID: uuid.New(), Input: input}
	logger := log.WithFields(log.Fields{
		"Method": "check",
		"ID":     res.ID,
	})

	es, err := gs1barcode.CheckWith(c.parser, c.unescaper.Replace(input), c.cfg)
	if decodeErr, ok := errors.Cause(err).(*elementstring.DecodeError); ok {
		logger.WithField("Kind", decodeErr.Kind).Debug("Decode failed")
		res.Errors = []string{decodeErr.Error()}
		return res
	}

	res.Kind = es.Kind().String()
	res.Fields = es.Fields()
	res.HRI = es.HRI()

	if errs, ok := errors.Cause(err).(validate.Errors); ok {
		logger.WithField("Kinds", errs.Kinds()).Debug("Validation failed")
		for _, e := range errs {
			res.Errors = append(res.Errors, e.Error())
		}
	} else if err != nil {
		res.Errors = append(res.Errors, err.Error())
	}

	if c.gcpLen != 0 {
		uri, err := epc.PureURI(es, c.gcpLen)
		switch {
		case errors.Cause(err) == epc.ErrNoEPC:
			logger.Debug("No EPC")
		case err != nil:
			res.Errors = append(res.Errors, err.Error())
		default:
			res.EPC = uri
		}
	}

	return res
}

func setLoggingLevel(loggingLevel string) {
	switch strings.ToLower(loggingLevel) {
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	// Not using filtered func (Info, etc ) so that message is always logged
	golog.Printf("Logging level set to %s\n", loggingLevel)
}

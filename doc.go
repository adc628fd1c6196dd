//The MIT License (MIT)

//Copyright (c) 2013 didier amyot

//Permission is hereby granted, free of charge, to any person obtaining a copy
//of this software and associated documentation files (the "Software"), to deal
//in the Software without restriction, including without limitation the rights
//to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
//copies of the Software, and to permit persons to whom the Software is
//furnished to do so, subject to the following conditions:

//The above copyright notice and this permission notice shall be included in
//all copies or substantial portions of the Software.

//THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
//IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
//FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
//AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
//LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
//THE SOFTWARE.

/*
Implementation of the paillier cryptosystem.  See
http://en.wikipedia.org/wiki/Paillier_cryptosystem for an introduction.

This package implements the PAI-GN1 variant (generator g = n+1) described in
Damgård's paper "A Generalization of Paillier's Public-Key System with
Applications to Electronic Voting", together with a base-B fixed-point
significand/exponent encoding layer that lets float64, int64 and big.Int
values be encrypted, added, and multiplied by plaintext scalars
homomorphically.

Keys and ciphertexts serialize to JSON (MarshalPublicKeyJSON,
MarshalPrivateKeyJSON, EncryptedNumber.MarshalJSON) and to BSON (the
paillier/bson subpackage). EncodedNumber values have no serialized form.
*/
package paillier
